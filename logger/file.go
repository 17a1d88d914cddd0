package logger

import (
	"fmt"
	"io"
	"os"
)

// OpenLog opens path for appending, falling back to discard on failure
// so the tui never writes log lines to the terminal.
func OpenLog(path string, mode os.FileMode) (file io.Writer) {

	var err error
	file, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, mode)
	if err != nil {
		fmt.Printf("warning: %s\n", err.Error())
		file = io.Discard
	}

	return
}

// CloseLog closes a writer returned by OpenLog.
func CloseLog(file io.Writer) {

	actually, ok := file.(*os.File)
	if ok {
		actually.Close()
	}
}
