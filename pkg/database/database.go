package database

import (
	"fmt"
	"log"
	"mathlearn_backend/internal/config"
	"mathlearn_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Material{},
		&model.Question{},
		&model.TestResult{},
		&model.UserProgress{},
		&model.ActionLog{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 默认分类
	var catCount int64
	db.Model(&model.Category{}).Count(&catCount)
	if catCount == 0 {
		defaultCategories := []string{"Logic", "Set theory", "Graphs", "Combinatorics"}
		for _, name := range defaultCategories {
			db.Create(&model.Category{Name: name})
		}
	}

	// 默认题库（表为空时插入，保证新环境可直接出题）
	var qCount int64
	db.Model(&model.Question{}).Count(&qCount)
	if qCount == 0 {
		defaultQuestions := []model.Question{
			{
				Topic:         "Propositional logic",
				Category:      "Logic",
				Prompt:        "What is a disjunction?",
				CorrectAnswer: "Logical OR",
				WrongAnswers:  model.StringList{"Logical AND", "Logical NOT", "Implication"},
				Kind:          model.MultipleChoice,
			},
			{
				Topic:         "Operations on sets",
				Category:      "Set theory",
				Prompt:        "What is the union of two sets?",
				CorrectAnswer: "All elements of both sets",
				WrongAnswers:  model.StringList{"Intersection", "Difference", "Complement"},
				Kind:          model.MultipleChoice,
			},
			{
				Topic:         "Graph theory basics",
				Category:      "Graphs",
				Prompt:        "What is a vertex of a graph?",
				CorrectAnswer: "A point in the graph",
				WrongAnswers:  model.StringList{"An edge", "A cycle", "A path"},
				Kind:          model.MultipleChoice,
			},
			{
				Topic:         "Combinatorial problems",
				Category:      "Combinatorics",
				Prompt:        "How many ways are there to choose 3 books out of 5?",
				CorrectAnswer: "10",
				WrongAnswers:  model.StringList{},
				Kind:          model.OpenEnded,
			},
		}
		for _, q := range defaultQuestions {
			db.Create(&q)
		}
	}

	return db, nil
}
