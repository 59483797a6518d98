package main

import (
	"majorexplorer/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.AccountModel{},
		model.SavedComparisonModel{},
		model.InterestAreaModel{},
		model.MajorModel{},
		model.DataSourceModel{},
		model.MajorStatModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
