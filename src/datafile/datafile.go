package datafile

// DataFile is a sequential line reader over a dump file. GetBytesRead reports
// how far into the underlying file the reader has advanced, which drives the
// progress bar during a run.
type DataFile interface {
	NextLine() (string, error)
	GetBytesRead() int64
	ResetBytesRead()
	Close()
}
