package tuple

import (
	"log"
	"os"
	"sync"
)

type ILogger interface {
	Println(v ...any)
	Printf(format string, v ...any)
}

// Logger receives debug output when [SetDebugLog] is on. Any logger with
// Println and Printf (the standard library's, logrus) can be assigned.
var Logger ILogger = log.New(os.Stdout, "postuple ", log.Ldate|log.Ltime|log.Lmicroseconds)

var debugLog = false

var debugLogMutex sync.RWMutex

func DebugLogEnabled() bool {
	defer debugLogMutex.RUnlock()
	debugLogMutex.RLock()
	return debugLog
}

func SetDebugLog(v bool) {
	defer debugLogMutex.Unlock()
	debugLogMutex.Lock()

	debugLog = v
}

func debugPrintf(format string, v ...any) {
	if DebugLogEnabled() {
		Logger.Printf(format, v...)
	}
}
