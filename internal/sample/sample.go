// Package sample holds the demo chart loaded by `gantt seed`.
package sample

import "github.com/julianstephens/gantt/internal/models"

func Categories() []models.Category {
	return []models.Category{
		{ID: 1, Name: "Test A", Position: 0},
		{ID: 2, Name: "Test B", Position: 1},
	}
}

func Tasks() []models.Task {
	task := func(id, category int, name, start, end, user string, pct int) models.Task {
		return models.Task{
			ID:           id,
			CategoryID:   category,
			Name:         name,
			StartDate:    models.MustParseDate(start),
			EndDate:      models.MustParseDate(end),
			InchargeUser: user,
			Percentage:   pct,
			Position:     id - 1,
		}
	}
	return []models.Task{
		task(1, 1, "Test 1", "2022-11-18", "2022-11-20", "Suzuki", 100),
		task(2, 1, "Test 2", "2022-11-19", "2022-11-23", "Sato", 90),
		task(3, 1, "Test 3", "2022-11-19", "2022-12-04", "Suzuki", 40),
		task(4, 1, "Test 4", "2022-11-21", "2022-11-30", "Yamashita", 60),
		task(5, 1, "Test 5", "2022-11-25", "2022-12-04", "Sato", 5),
		task(6, 2, "Test 6", "2022-11-28", "2022-12-08", "Sato", 0),
	}
}
