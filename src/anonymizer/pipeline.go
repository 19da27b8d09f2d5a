package anonymizer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tevino/abool/v2"

	"ghostdb/src/config"
	"ghostdb/src/datafile"
	"ghostdb/src/sqlparser"
	"ghostdb/src/utils"
)

var log = utils.GetLogger()

// LineCounters are the running totals for one pipeline invocation.
type LineCounters struct {
	LinesProcessed       int64
	StatementsAnonymized int64
}

// Pipeline rewrites a dump line by line. Lines that are not single-line
// INSERT statements, target untracked tables, or have mismatched column and
// value counts pass through byte-identical; everything else has only its
// value list rewritten.
type Pipeline struct {
	cfg         *config.AppConfig
	transformer *Transformer
	Counters    LineCounters
}

func NewPipeline(cfg *config.AppConfig, globalSeed uint64) *Pipeline {
	return &Pipeline{
		cfg:         cfg,
		transformer: NewTransformer(globalSeed),
	}
}

// ProcessLine runs the per-line state machine and returns the line to emit.
func (p *Pipeline) ProcessLine(line string) string {
	stmt, ok := sqlparser.MatchInsert(line)
	if !ok {
		return line
	}

	tableConfig, tracked := p.cfg.ResolveTable(stmt.TableName)
	if !tracked {
		return line
	}

	columns := sqlparser.SplitColumns(stmt.ColumnsPart)
	values := sqlparser.SplitValues(stmt.ValuesPart)

	if len(columns) != len(values) {
		log.Warnf("column count mismatch for table %s (%d columns, %d values), skipping line %d",
			stmt.TableName, len(columns), len(values), p.Counters.LinesProcessed)
		return line
	}

	newValues := make([]string, len(values))
	for i, columnName := range columns {
		strategy := tableConfig.StrategyFor(columnName)
		newValues[i] = p.transformer.Transform(values[i], strategy)
	}

	p.Counters.StatementsAnonymized++
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
		stmt.TableName, stmt.ColumnsPart, strings.Join(newValues, ", "))
}

// Run drains the data file into the writer. Content-level anomalies never
// stop the run; only stream-level I/O errors do. A set stop flag aborts
// between lines, after what was already written is flushed.
func (p *Pipeline) Run(df datafile.DataFile, writer *bufio.Writer, stopFlag *abool.AtomicBool) error {
	for {
		if stopFlag != nil && stopFlag.IsSet() {
			log.Warnf("stop requested, aborting after %d lines", p.Counters.LinesProcessed)
			break
		}

		line, err := df.NextLine()
		if err != nil && err != io.EOF {
			return fmt.Errorf("read input: %w", err)
		}
		atEOF := err == io.EOF
		if atEOF && line == "" {
			break
		}

		p.Counters.LinesProcessed++
		if p.Counters.LinesProcessed%100000 == 0 {
			log.Infof("Processed %d lines...", p.Counters.LinesProcessed)
		}

		if _, err := writer.WriteString(p.ProcessLine(line)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if err := writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("write output: %w", err)
		}

		if atEOF {
			break
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
