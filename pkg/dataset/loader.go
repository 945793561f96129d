package dataset

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/helioview/helioview/pkg/log"
	"github.com/helioview/helioview/pkg/metrics"
	"github.com/helioview/helioview/pkg/types"
)

// secondsPerHour converts the simulation's elapsed-seconds time base to hours.
const secondsPerHour = 3600.0

// renameMap maps the simulation export's column aliases to canonical names.
// The aliases are specific to the Simulink export format; unrecognized
// columns pass through unchanged.
var renameMap = map[string]string{
	"time":         ColTime,
	"Time_Seconds": ColTime,
	"Pl/t":         ColEnergyLoad,
	"Ppv/t":        ColEnergyPV,
	"Vload:1":      ColLoadVoltage,
}

// Load reads and normalizes a simulation CSV. A missing file yields an empty
// table with StateMissing and no error; a file that exists but cannot be
// parsed yields StateParseError and a warning naming the file. Neither is
// fatal: callers degrade to a smaller rendered surface.
func Load(ctx context.Context, path string) Table {
	start := time.Now()

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Ctx(ctx).WarnContext(ctx, "failed to stat data file",
				slog.String("path", path), slog.Any("error", err))
		}
		metrics.ObserveDatasetLoad(string(types.StateMissing), time.Since(start))
		return Table{path: path, state: types.StateMissing}
	}

	f, err := os.Open(path)
	if err != nil {
		log.Ctx(ctx).WarnContext(ctx, "failed to open data file",
			slog.String("path", path), slog.Any("error", err))
		metrics.ObserveDatasetLoad(string(types.StateParseError), time.Since(start))
		return Table{path: path, state: types.StateParseError, err: err}
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DefaultType(series.Float),
		dataframe.DetectTypes(false),
	)
	if df.Err != nil {
		log.Ctx(ctx).WarnContext(ctx, "failed to parse data file",
			slog.String("path", path), slog.Any("error", df.Err))
		metrics.ObserveDatasetLoad(string(types.StateParseError), time.Since(start))
		return Table{path: path, state: types.StateParseError, err: df.Err}
	}

	df = convertTime(renameColumns(df))

	log.Ctx(ctx).DebugContext(ctx, "loaded data file",
		slog.String("path", path),
		slog.Int("rows", df.Nrow()),
		slog.Int("cols", df.Ncol()),
	)
	metrics.ObserveDatasetLoad(string(types.StateLoaded), time.Since(start))
	return Table{path: path, state: types.StateLoaded, df: df}
}

// renameColumns applies the alias map. Idempotent: the canonical names are
// never alias keys, so a second application changes nothing.
func renameColumns(df dataframe.DataFrame) dataframe.DataFrame {
	present := make(map[string]bool, df.Ncol())
	for _, n := range df.Names() {
		present[n] = true
	}

	for alias, canonical := range renameMap {
		if present[alias] && !present[canonical] {
			df = df.Rename(canonical, alias)
			present[canonical] = true
			delete(present, alias)
		}
	}

	return df
}

// convertTime divides the canonical time column by 3600, turning elapsed
// seconds into hours. Runs once per load, directly after renameColumns.
func convertTime(df dataframe.DataFrame) dataframe.DataFrame {
	for _, n := range df.Names() {
		if n != ColTime {
			continue
		}
		vals := df.Col(ColTime).Float()
		for i := range vals {
			vals[i] /= secondsPerHour
		}
		return df.Mutate(series.New(vals, series.Float, ColTime))
	}
	return df
}
