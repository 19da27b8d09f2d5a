package datafile

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

type SqlDataFile struct {
	file      *os.File
	reader    *bufio.Reader
	bytesRead int64
}

var _ DataFile = &SqlDataFile{}

func OpenSqlDataFile(filePath string) (*SqlDataFile, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open data file %q: %w", filePath, err)
	}
	return &SqlDataFile{
		file:   file,
		reader: bufio.NewReader(file),
	}, nil
}

// NextLine returns the next line without its trailing newline. On the last
// line of a file that lacks a final newline, the content is returned together
// with io.EOF.
func (sqldf *SqlDataFile) NextLine() (string, error) {
	line, err := sqldf.reader.ReadString('\n')

	sqldf.bytesRead += int64(len(line))

	line = strings.TrimRight(line, "\n")
	return line, err
}

func (sqldf *SqlDataFile) Close() {
	sqldf.file.Close()
}

func (sqldf *SqlDataFile) GetBytesRead() int64 {
	return sqldf.bytesRead
}

func (sqldf *SqlDataFile) ResetBytesRead() {
	sqldf.bytesRead = 0
}

// Size reports the total byte size of the underlying file.
func (sqldf *SqlDataFile) Size() (int64, error) {
	stat, err := sqldf.file.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat data file: %w", err)
	}
	return stat.Size(), nil
}
