package parser

const (
	labelProcess                 = "Process"
	labelInputParameters         = "Input parameters"
	labelCalculatedParameters    = "Calculated parameters"
	labelWasteToTreatment        = "Waste to treatment"
	labelDatabaseInputParameters = "Database Input parameters"
)

// Flags describe how the file was exported.
type Flags struct {
	// ConvertedToConstants is set when no "Input parameters" category
	// exists: expressions were converted to constants on export.
	ConvertedToConstants bool
	// ExportedFromEditionWindow is set when no "Database Input parameters"
	// section exists, so the file carries no database or project parameters.
	ExportedFromEditionWindow bool
}

// DetectFlags scans normalized rows for the categories that reveal the
// export mode.
func DetectFlags(rows []Row) Flags {
	flags := Flags{ConvertedToConstants: true, ExportedFromEditionWindow: true}
	for i := range rows {
		switch label, _ := sectionHeader(rows, i); label {
		case labelInputParameters:
			flags.ConvertedToConstants = false
		case labelDatabaseInputParameters:
			flags.ExportedFromEditionWindow = false
		}
	}
	return flags
}

// lastCategory is the category that physically ends a process block.
// TODO: confirm against newer SimaPro exports that this ordering still
// holds; it is observed behavior, not a documented rule.
func lastCategory(flags Flags) string {
	if flags.ConvertedToConstants {
		return labelWasteToTreatment
	}
	return labelCalculatedParameters
}

type processState int

const (
	waitingForProcess processState = iota
	insideProcess
)

// processSplitter cuts process blocks out of the row stream.
type processSplitter struct {
	last            string
	state           processState
	sawLastCategory bool
	current         []Row
	blocks          [][]Row
}

// feed consumes one row; label is its section header text, or "" when the
// row does not open a section.
func (s *processSplitter) feed(row Row, label string) {
	switch s.state {
	case waitingForProcess:
		if text, ok := row.sole(); ok && text == labelProcess {
			s.current = []Row{row}
			s.state = insideProcess
		}
	case insideProcess:
		s.current = append(s.current, row)
		if label == s.last {
			s.sawLastCategory = true
		}
		if len(row) == 0 && s.sawLastCategory {
			s.blocks = append(s.blocks, s.current)
			s.current = nil
			s.sawLastCategory = false
			s.state = waitingForProcess
		}
	}
}

// finish closes a block left open at the end of the stream. Normalization
// drops trailing blank rows, so the final process has no closing row.
func (s *processSplitter) finish() {
	if s.state == insideProcess {
		s.blocks = append(s.blocks, s.current)
		s.current = nil
		s.state = waitingForProcess
	}
}

// commonAccumulator collects every row from the database parameters header
// to the end of the file.
type commonAccumulator struct {
	started bool
	rows    []Row
}

func (a *commonAccumulator) feed(row Row, label string) {
	if label == labelDatabaseInputParameters {
		a.started = true
	}
	if a.started {
		a.rows = append(a.rows, row)
	}
}

// Segment partitions normalized rows into process blocks and the common
// parameters block. Both state machines see every row. When the file was
// exported from an edition window the common block is empty.
func Segment(source string, rows []Row, flags Flags) ([]Block, Block) {
	splitter := &processSplitter{last: lastCategory(flags)}
	common := &commonAccumulator{}
	for i, row := range rows {
		label, _ := sectionHeader(rows, i)
		splitter.feed(row, label)
		if !flags.ExportedFromEditionWindow {
			common.feed(row, label)
		}
	}
	splitter.finish()

	blocks := make([]Block, 0, len(splitter.blocks))
	for _, b := range splitter.blocks {
		blocks = append(blocks, Block{Source: source, Rows: b})
	}
	return blocks, Block{Source: source, Rows: common.rows}
}
