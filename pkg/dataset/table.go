package dataset

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/helioview/helioview/pkg/types"
)

// Canonical column names after normalization.
const (
	ColTime        = "Time"
	ColLoadPower   = "Pload"
	ColPanelPower  = "Ppv"
	ColEnergyLoad  = "Energy_Load"
	ColEnergyPV    = "Energy_PV"
	ColLoadVoltage = "Vload"
	ColPVVoltage   = "Vpv"
	ColLoadCurrent = "Iload"
	ColPVCurrent   = "Ipv"

	// Weather input columns. Only present in the weather trace.
	ColTemperature = "Temperature"
	ColGHI         = "GHI"
	ColDNI         = "DNI"
	ColDHI         = "DHI"
)

// Table is a normalized simulation trace. The zero value is an empty table
// with StateMissing. Tables are immutable after load.
type Table struct {
	path  string
	state types.LoadState
	err   error
	df    dataframe.DataFrame
}

// Path returns the file path the table was loaded from.
func (t Table) Path() string {
	return t.path
}

// State reports whether the table was loaded, missing, or unparseable.
func (t Table) State() types.LoadState {
	if t.state == "" {
		return types.StateMissing
	}
	return t.state
}

// Err returns the parse error for a StateParseError table, nil otherwise.
func (t Table) Err() error {
	return t.err
}

// Empty reports whether the table holds no usable rows. Missing and
// unparseable tables are always empty.
func (t Table) Empty() bool {
	return t.State() != types.StateLoaded || t.df.Nrow() == 0
}

// Rows returns the number of samples in the table.
func (t Table) Rows() int {
	if t.State() != types.StateLoaded {
		return 0
	}
	return t.df.Nrow()
}

// Columns returns the post-rename column names.
func (t Table) Columns() []string {
	if t.State() != types.StateLoaded {
		return nil
	}
	return t.df.Names()
}

// HasColumns reports whether every named column is present. Charts use this
// to decide whether they can render from this table.
func (t Table) HasColumns(cols ...string) bool {
	if t.State() != types.StateLoaded {
		return false
	}
	names := make(map[string]bool, t.df.Ncol())
	for _, n := range t.df.Names() {
		names[n] = true
	}
	for _, c := range cols {
		if !names[c] {
			return false
		}
	}
	return true
}

// Floats returns the values of a column, or nil when the column is absent.
func (t Table) Floats(col string) []float64 {
	if !t.HasColumns(col) {
		return nil
	}
	return t.df.Col(col).Float()
}
