package main

import (
	"fieldtrack/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.VisitModel{},
		model.SampleStockModel{},
		model.LocationSampleModel{},
		model.WeeklySnapshotModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
