package report

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"iotdef.xyz/agro-dashboard-service/pkg/common"
	"iotdef.xyz/agro-dashboard-service/pkg/format"
	"iotdef.xyz/agro-dashboard-service/pkg/models"
)

const (
	SheetPlots    = "Parcelas"
	SheetAverages = "Promedios"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var plotHeaders = []any{
	"ID", "Nombre", "Ubicación", "Responsable", "Tipo de cultivo", "Último riego",
	"Latitud", "Longitud", "Temperatura (°C)", "Humedad (%)", "Lluvia", "Intensidad del sol",
}

// WritePlotsWorkbook writes an xlsx with one row per active plot and a
// second sheet holding the averages.
func WritePlotsWorkbook(w io.Writer, plots []models.Plot, averages models.Averages, generatedAt time.Time) error {
	logger := common.GetLoggerWith(common.LoggerNameRestfulServer, zap.String(common.LoggerFieldCategory, "export"))

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetPlots); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writePlotsSheet(f, plots); err != nil {
		return fmt.Errorf("failed to create plots sheet: %w", err)
	}
	if err := writeAveragesSheet(f, len(plots), averages, generatedAt); err != nil {
		return fmt.Errorf("failed to create averages sheet: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	logger.Info("Generated plots workbook", zap.Int("plots", len(plots)))
	return nil
}

func writePlotsSheet(f *excelize.File, plots []models.Plot) error {
	if err := f.SetSheetRow(SheetPlots, "A1", &plotHeaders); err != nil {
		return err
	}

	for i, p := range plots {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{
			p.ID, p.Name, p.Location, p.Responsible, p.CropType, format.NormalizeDate(p.LastIrrigation),
			string(p.Latitude), string(p.Longitude), p.Temperature, p.Humidity, rainLabel(p.RainFlag()), p.SunIntensity,
		}
		if err := f.SetSheetRow(SheetPlots, cell, &row); err != nil {
			return err
		}
	}

	last, _ := excelize.ColumnNumberToName(len(plotHeaders))
	return f.SetColWidth(SheetPlots, "A", last, 16)
}

func writeAveragesSheet(f *excelize.File, activePlots int, avg models.Averages, generatedAt time.Time) error {
	if _, err := f.NewSheet(SheetAverages); err != nil {
		return err
	}

	rows := [][]any{
		{"Indicador", "Valor"},
		{"Parcelas activas", activePlots},
		{"Temperatura promedio (°C)", avg.Temperature},
		{"Humedad promedio (%)", avg.Humidity},
		{"Intensidad del sol promedio", avg.SunIntensity},
		{"Lluvia", rainLabel(avg.Rain)},
		{"Generado", generatedAt.UTC().Format(time.RFC3339)},
	}
	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SheetAverages, cell, &rows[i]); err != nil {
			return err
		}
	}
	return f.SetColWidth(SheetAverages, "A", "B", 28)
}

func rainLabel(rain bool) string {
	if rain {
		return "Sí"
	}
	return "No"
}
