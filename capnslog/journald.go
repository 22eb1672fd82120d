package capnslog

import (
	"github.com/coreos/go-systemd/v22/journal"
)

// JournaldFormatter submits log entries to the systemd journal instead of
// an io.Writer, mapping capnslog's finer-grained levels onto journal
// priorities. Construct with NewJournaldFormatter and install with
// SetFormatter; NewJournaldFormatter returns an error if the journal socket
// is unreachable (e.g. running under an init system other than systemd).
type JournaldFormatter struct{}

// NewJournaldFormatter returns a Formatter that writes through the local
// systemd journal, or an error if the journal is not available.
func NewJournaldFormatter() (*JournaldFormatter, error) {
	if !journal.Enabled() {
		return nil, errJournalUnavailable
	}
	return &JournaldFormatter{}, nil
}

func (j *JournaldFormatter) Format(pkg string, level LogLevel, depth int, entries ...LogEntry) {
	pri := journalPriority(level)
	vars := map[string]string{"SYSLOG_IDENTIFIER": pkg}
	for _, e := range entries {
		journal.Send(e.LogString(), pri, vars)
	}
}

func journalPriority(level LogLevel) journal.Priority {
	switch level {
	case CRITICAL:
		return journal.PriCrit
	case ERROR:
		return journal.PriErr
	case WARNING:
		return journal.PriWarning
	case NOTICE:
		return journal.PriNotice
	case INFO:
		return journal.PriInfo
	case DEBUG, TRACE:
		return journal.PriDebug
	default:
		return journal.PriInfo
	}
}

type journalUnavailableError struct{}

func (journalUnavailableError) Error() string { return "capnslog: systemd journal is not available" }

var errJournalUnavailable error = journalUnavailableError{}
