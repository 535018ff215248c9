package main

import (
	"fmt"
	"os"

	"github.com/EnrichTheWorld/enrich-the-world-blog/database"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/i18n"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/logger"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/model"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/quizbank"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/repository"
	"github.com/EnrichTheWorld/enrich-the-world-blog/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
)

// localClientID keys the history of the single local player.
const localClientID = "local"

func main() {
	logger.Discard()

	viper.AutomaticEnv()
	viper.SetDefault("QUIZ_DB_PATH", "quiz.db")
	viper.SetDefault("QUIZ_LOCALE", "en")

	locale, _ := i18n.Parse(viper.GetString("QUIZ_LOCALE"))
	if err := run(viper.GetString("QUIZ_DB_PATH"), locale); err != nil {
		fmt.Fprintln(os.Stderr, "quiz:", err)
		os.Exit(1)
	}
}

func run(dbPath string, locale i18n.Locale) error {
	db, err := database.OpenSQLite(dbPath)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err := db.AutoMigrate(&model.KVEntry{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", dbPath, err)
	}

	bank, err := quizbank.Load()
	if err != nil {
		return err
	}
	results := repository.NewResultRepository(repository.NewGormStorage(db))

	m, err := tui.NewQuizModel(bank, results, localClientID, locale)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m).Run()
	return err
}
