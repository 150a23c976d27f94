package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/spigell/resume-ranker/internal/ingest"
	"github.com/spigell/resume-ranker/internal/logger"
	"github.com/spigell/resume-ranker/internal/match"
	"github.com/spigell/resume-ranker/internal/resume"
	"github.com/spigell/resume-ranker/internal/screening"
	"github.com/spigell/resume-ranker/internal/skills"
	"github.com/spigell/resume-ranker/internal/text"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptShowShortlist       = "Show ranked shortlist"
	PromptReportByTier        = "Report by tier"
	PromptDumpToFile          = "Dump results to file"
	PromptExportCSV           = "Export shortlist to CSV"
	PromptAppendToExcludeFile = "Append all resumes to exclude file"
	PromptExit                = "Exit"

	jdPreviewLength = 200
)

var errExit = errors.New("exit requested")

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the resume-ranker main command",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("auto-approve", "y", false, "print the shortlist and exit without the interactive menu")
	runCmd.Flags().StringP("exclude-file", "e", "", "special file with resumes to exclude. Default is unset.")

	viper.BindPFlag("exclude-file", runCmd.Flags().Lookup("exclude-file"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the resume-ranker", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	if config.JobDescription == "" {
		logger.Fatal("job description file is required under job-description to score resumes against")
	}

	if config.ResumesDir == "" {
		logger.Fatal("resumes directory is required under resumes-dir")
	}

	jd, err := loadJobDescription(config, logger)
	if err != nil {
		logger.Fatal("loading job description", zap.Error(err))
	}

	taxonomy, err := resolveTaxonomy(config)
	if err != nil {
		logger.Fatal("decoding taxonomy", zap.Error(err))
	}
	vocab := taxonomy.Terms()
	logger.Debug("taxonomy resolved",
		zap.Strings("categories", taxonomy.Categories()),
		zap.Int("terms", len(vocab)),
	)

	jdSkills := skills.Extract(jd, vocab)
	logger.Info("job requirements", zap.Strings("skills", jdSkills))

	reader := ingest.New(logger)

	files, err := reader.ListDocuments(config.ResumesDir)
	if err != nil {
		logger.Fatal("listing resumes", zap.Error(err))
	}

	if len(files) == 0 {
		logger.Info("exiting", zap.String("reason", "no resumes found"), zap.String("dir", config.ResumesDir))
		return
	}

	logger.Info("ingesting resumes", zap.Int("count", len(files)))

	batch := ingestResumes(reader, files, vocab, jdSkills)

	filters := []screening.Filter{
		screening.NewEmptyText(),
		screening.NewExcludeFile(viper.GetString("exclude-file")),
	}

	batch, err = screening.Run(screening.Deps{Logger: logger}, filters, batch)
	if err != nil {
		logger.Fatal("screening failed", zap.Error(err))
	}

	if batch.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no resumes left after screening"))
		return
	}

	scoring := match.DefaultScoringConfig()
	if config.Scoring != nil {
		scoring = *config.Scoring
	}

	results := match.Score(jd, batch.Texts(), scoring)
	applyResults(batch, results, config.MinimumScore)
	batch.SortByScore()

	logger.Info("scoring finished",
		zap.Int("count", batch.Len()),
		zap.Float64("average_score", batch.AverageScore()),
	)

	printShortlist(logger, batch)

	if cmd.Flag("auto-approve").Value.String() == "true" {
		if err := exportConfiguredCSV(config, batch, logger); err != nil {
			logger.Fatal("exporting csv", zap.Error(err))
		}
		return
	}

	prompt := promptui.Select{
		Label: "Proceed?",
		Items: promptItems(),
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, config, batch); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func promptItems() []string {
	items := []string{
		PromptShowShortlist,
		PromptReportByTier,
		PromptDumpToFile,
		PromptExportCSV,
	}

	if viper.GetString("exclude-file") != "" {
		items = append(items, PromptAppendToExcludeFile)
	}

	return append(items, PromptExit)
}

func handleAction(action string, logger *zap.Logger, config *Config, batch *resume.Resumes) error {
	switch action {
	case PromptShowShortlist:
		printShortlist(logger, batch)
		return nil
	case PromptReportByTier:
		pretty, _ := json.MarshalIndent(batch.ReportByTier(), "", "  ")
		logger.Info(string(pretty), zap.Int("resumes count", batch.Len()))
		return nil
	case PromptDumpToFile:
		filename, err := batch.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptExportCSV:
		return exportConfiguredCSV(config, batch, logger)
	case PromptAppendToExcludeFile:
		return appendToExcludeFile(logger, batch)
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// loadJobDescription reads and normalizes the reference text. An empty job
// description is allowed and simply scores every resume at zero, but it is
// almost never what the user wants, so warn loudly.
func loadJobDescription(config *Config, logger *zap.Logger) (string, error) {
	raw, err := ingest.ReadTextFile(config.JobDescription)
	if err != nil {
		return "", err
	}

	jd := text.Normalize(raw)
	if jd == "" {
		logger.Warn("job description is empty after normalization",
			zap.String("file", config.JobDescription),
			zap.String("hint", "every resume will score 0.00"),
		)
	}

	logger.Debug("job description loaded",
		zap.String("file", config.JobDescription),
		zap.String("preview", preview(jd)),
	)

	return jd, nil
}

func preview(s string) string {
	return logger.Preview(s, jdPreviewLength)
}

func resolveTaxonomy(config *Config) (skills.Taxonomy, error) {
	if len(config.Taxonomy) == 0 {
		return skills.DefaultTaxonomy(), nil
	}
	return skills.DecodeTaxonomy(config.Taxonomy)
}

func ingestResumes(reader *ingest.Reader, files []string, vocab, jdSkills []string) *resume.Resumes {
	batch := &resume.Resumes{}

	for _, file := range files {
		raw := reader.Extract(file)
		sections := resume.Segment(raw)
		normalized := text.Normalize(raw)
		found := skills.Extract(normalized, vocab)

		batch.Items = append(batch.Items, &resume.Resume{
			File:          filepath.Base(file),
			Text:          normalized,
			Contact:       skills.ExtractContact(raw),
			Skills:        found,
			SkillsMatched: skills.Intersect(found, jdSkills),
			SkillsMissing: skills.Difference(jdSkills, found),
			SectionsFound: sections.Found(),
		})
	}

	return batch
}

// applyResults attaches the engine output to the batch. Resumes below the
// minimum score stay in the batch and the reports; they are only left off the
// shortlist.
func applyResults(batch *resume.Resumes, results []match.Result, minScore float64) {
	for i, r := range results {
		item := batch.Items[i]
		item.Cosine = r.Cosine
		item.Jaccard = r.Jaccard
		item.Score = r.Score
		item.Keywords = r.Keywords
		item.Shortlisted = minScore <= 0 || r.Score >= minScore
	}
}

func printShortlist(logger *zap.Logger, batch *resume.Resumes) {
	for i, item := range batch.Items {
		logger.Info("candidate",
			zap.Int("rank", i+1),
			zap.String("file", item.File),
			zap.Float64("score", item.Score),
			zap.String("tier", resume.Tier(item.Score)),
			zap.Bool("shortlisted", item.Shortlisted),
			zap.Strings("skills_matched", item.SkillsMatched),
			zap.Strings("skills_missing", item.SkillsMissing),
			zap.Strings("top_keywords", item.Keywords),
			zap.String("email", item.Contact.Email),
			zap.String("phone", item.Contact.Phone),
		)
	}
}

func exportConfiguredCSV(config *Config, batch *resume.Resumes, logger *zap.Logger) error {
	path := "shortlist.csv"
	top := 0
	if config.Report != nil {
		if config.Report.CSVFile != "" {
			path = config.Report.CSVFile
		}
		top = config.Report.Top
	}

	if err := batch.ExportCSV(path, top); err != nil {
		return fmt.Errorf("export shortlist: %w", err)
	}

	logger.Info("exported shortlist", zap.String("filename", path), zap.Int("top", top))
	return nil
}

func appendToExcludeFile(logger *zap.Logger, batch *resume.Resumes) error {
	excludeFile := viper.GetString("exclude-file")
	if excludeFile == "" {
		return errors.New("exclude-file is not configured")
	}

	excluded, err := resume.GetExcludedResumesFromFile(excludeFile)
	if err != nil {
		excluded = &resume.ExcludedResumes{}
	}

	excluded.Append(batch.ToExcluded("processed"))

	if err := excluded.ToFile(excludeFile); err != nil {
		return err
	}

	logger.Info("appended to exclude file", zap.String("filename", excludeFile))
	return nil
}
