package utils

import (
	"fmt"
	"os"

	"github.com/yosssi/gohtml"
)

var log = GetLogger()

func FileOrFolderExists(path string) bool {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false
		}
		panic(fmt.Sprintf("error while checking path %q: %v", path, err))
	}
	return true
}

// PrintAndLog writes a message to the console and to the log.
func PrintAndLog(formatString string, args ...interface{}) {
	fmt.Printf(formatString+"\n", args...)
	log.Infof(formatString, args...)
}

func ErrExit(formatString string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, formatString+"\n", args...)
	log.Errorf(formatString, args...)
	os.Exit(1)
}

func PrettifyHtmlString(htmlStr string) string {
	return gohtml.Format(htmlStr)
}
