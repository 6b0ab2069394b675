package main

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/pocketledger/backend/internal/categorizer"
	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/router"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration from a .env file if one exists
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create data directory
	dataDir, ok := os.LookupEnv("DATA_DIR")
	if !ok {
		dataDir = filepath.Join(".", "data")
	}
	err := os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Load the category store. A missing store file means a fresh start, a
	// broken one has to be fixed by hand before the backend starts
	store := models.NewCategoryStore(filepath.Join(dataDir, "categories.json"))
	if err := store.Load(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	co := v1.NewController(store, extractorFromEnv())

	r, err := router.Config()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(co, r.Group("/"))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

// extractorFromEnv returns the keyword extractor, with the token window
// taken from the environment. The window depends on the narrative layout of
// the bank export, the default fits the supported ledger format.
func extractorFromEnv() categorizer.Extractor {
	extractor := categorizer.NewExtractor()

	if s, ok := os.LookupEnv("KEYWORD_PHRASE_START"); ok {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			extractor.Start = v
		} else {
			log.Warn().Str("KEYWORD_PHRASE_START", s).Msg("not a valid token offset, using default")
		}
	}

	if s, ok := os.LookupEnv("KEYWORD_PHRASE_END"); ok {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			extractor.End = v
		} else {
			log.Warn().Str("KEYWORD_PHRASE_END", s).Msg("not a valid token offset, using default")
		}
	}

	// Validate the window as a whole. Setting only one of the offsets can
	// leave the end before the start, which would make every extraction
	// yield the empty phrase.
	if extractor.End < extractor.Start {
		log.Warn().
			Int("start", extractor.Start).
			Int("end", extractor.End).
			Msg("keyword phrase window is empty, using default")
		return categorizer.NewExtractor()
	}

	return extractor
}
