package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/elektrokombinacija/taxi-mapf/internal/core"
)

// WriteWorkbook exports the schedule as an xlsx file with one sheet for the
// edge reservations and one for per-taxi results. Returns an error for nil
// or infeasible solutions; callers should render NoFeasiblePlan instead.
func WriteWorkbook(path string, inst *core.Instance, sol *core.Solution) error {
	if sol == nil || !sol.Feasible {
		return fmt.Errorf("cannot export infeasible solution")
	}

	f := excelize.NewFile()
	defer f.Close()

	const scheduleSheet = "Schedule"
	index, err := f.NewSheet(scheduleSheet)
	if err != nil {
		return fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []interface{}{"Taxi", "Edge", "Start (min)", "End (min)", "Degraded"}
	if err := setRow(f, scheduleSheet, 1, headers); err != nil {
		return err
	}
	if headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	}); err == nil {
		f.SetRowStyle(scheduleSheet, 1, 1, headerStyle)
	}

	for rowIndex, e := range sol.Schedule {
		values := []interface{}{
			e.Taxi + 1,
			fmt.Sprintf("%d-%d", e.Edge.U, e.Edge.V),
			e.Start,
			e.End,
			e.Degraded,
		}
		if err := setRow(f, scheduleSheet, rowIndex+2, values); err != nil {
			return err
		}
	}

	const taxiSheet = "Taxis"
	if _, err := f.NewSheet(taxiSheet); err != nil {
		return fmt.Errorf("error creating sheet: %w", err)
	}
	taxiHeaders := []interface{}{"Taxi", "Trip", "Route", "Completion (min)", "Waits"}
	if err := setRow(f, taxiSheet, 1, taxiHeaders); err != nil {
		return err
	}
	for i := range sol.Taxis {
		trip := inst.Trips[i]
		values := []interface{}{
			i + 1,
			fmt.Sprintf("%d -> %d", trip.Origin, trip.Dest),
			routeString(sol.Taxis[i].Route),
			sol.CompletionTime(i),
			len(sol.Taxis[i].Waits),
		}
		if err := setRow(f, taxiSheet, i+2, values); err != nil {
			return err
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("error removing default sheet: %w", err)
	}

	return f.SaveAs(path)
}

// setRow writes values left to right starting at column A of the given row.
func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, value := range values {
		cell := fmt.Sprintf("%c%d", 'A'+col, row)
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("error writing cell %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
