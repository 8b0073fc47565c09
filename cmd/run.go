package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spigell/skill2success/internal/ai"
	"github.com/spigell/skill2success/internal/ai/gemini"
	"github.com/spigell/skill2success/internal/logger"
	"github.com/spigell/skill2success/internal/quiz"
	"github.com/spigell/skill2success/internal/report"
	"github.com/spigell/skill2success/internal/roadmap"
	"github.com/spigell/skill2success/internal/secrets"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/skill2success/internal/skillgraph"
)

const geminiAPIKeyEnv = "GEMINI_API_KEY"

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the quiz and build the career roadmap",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("skills", "s", "", "comma-separated skills; skips the interactive quiz")
	runCmd.Flags().StringP("input-file", "i", "", "normalize a saved generator reply instead of calling Gemini")
	runCmd.Flags().StringP("output", "o", "", "write the skill-career graph image to this file")
	runCmd.Flags().String("format", "svg", "graph image format: svg, png or dot")
	runCmd.Flags().Int64("seed", skillgraph.DefaultSeed, "layout seed")

	viper.BindPFlag("graph.output", runCmd.Flags().Lookup("output"))
	viper.BindPFlag("graph.format", runCmd.Flags().Lookup("format"))
	viper.BindPFlag("graph.seed", runCmd.Flags().Lookup("seed"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the skill2success", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	session, err := collectSession(cmd, config)
	if err != nil {
		logger.Fatal("collecting the student profile", zap.Error(err))
	}

	logger.Info("student profile collected",
		zap.Int("skills", len(session.Skills)),
		zap.Int("psychometric_answers", len(session.PsychometricAnswers)),
	)

	raw, err := generatorReply(ctx, cmd, config, session, logger)
	if err != nil {
		logger.Fatal("getting a generator reply", zap.Error(err))
	}

	rm, err := roadmap.Parse(raw)
	if err != nil {
		logger.Fatal("normalizing the generator reply",
			zap.Error(err),
			zap.String("hint", "the generator returned an unusable payload; rerun to get a fresh reply"),
		)
	}

	logger.Info("roadmap normalized",
		zap.Int("careers", len(rm.Careers)),
		zap.Int("skills_to_learn", len(rm.SkillNames())),
		zap.Int("projects", len(rm.Projects)),
		zap.Int("tips", len(rm.Tips)),
	)

	fmt.Print(report.Render(rm))

	graph := skillgraph.Build(session.Skills, rm)

	for _, name := range graph.Collisions() {
		logger.Warn("name is both a recommended skill and a career title, treating it as a career",
			zap.String("name", name),
		)
	}

	if len(graph.Edges) == 0 {
		logger.Warn("skill-career graph is degenerate",
			zap.Int("skills", len(graph.Skills())),
			zap.Int("careers", len(graph.Careers())),
		)
	}

	layout := skillgraph.SpringLayout(graph, viper.GetInt64("graph.seed"))

	logger.Info("skill-career graph built",
		zap.Int("nodes", len(graph.Nodes)),
		zap.Int("edges", len(graph.Edges)),
	)

	output := viper.GetString("graph.output")
	if output == "" {
		return
	}

	if err := writeGraphImage(ctx, graph, layout, output, viper.GetString("graph.format")); err != nil {
		logger.Fatal("writing the graph image", zap.Error(err))
	}

	logger.Info("graph image written",
		zap.String("filename", output),
		zap.String("format", viper.GetString("graph.format")),
	)
}

// collectSession returns the student profile: preselected skills from the
// flag/config when present, the interactive quiz otherwise.
func collectSession(cmd *cobra.Command, config *Config) (*quiz.Session, error) {
	preselected := quiz.SplitSkills(cmd.Flag("skills").Value.String())
	if len(preselected) == 0 && config != nil {
		preselected = quiz.MergeSkills(config.Skills)
	}

	if len(preselected) > 0 {
		return &quiz.Session{
			PsychometricAnswers: map[string]string{},
			Skills:              preselected,
		}, nil
	}

	questions := quiz.Questions()
	if config != nil && config.Quiz != nil && len(config.Quiz.Questions) > 0 {
		custom, err := quiz.QuestionsFromConfig(config.Quiz.Questions)
		if err != nil {
			return nil, err
		}
		questions = custom
	}

	return quiz.Run(questions)
}

// generatorReply obtains the raw roadmap text, either from a saved reply file
// or by calling Gemini.
func generatorReply(ctx context.Context, cmd *cobra.Command, config *Config, session *quiz.Session, logger *zap.Logger) (string, error) {
	if inputFile := cmd.Flag("input-file").Value.String(); inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("reading saved reply: %w", err)
		}
		logger.Info("using a saved generator reply", zap.String("filename", inputFile))
		return string(data), nil
	}

	generator, err := newGenerator(ctx, config.AI.Gemini, logger)
	if err != nil {
		return "", err
	}

	logger.Info("generating the career roadmap", zap.String("model", generator.Model()))

	return generator.GenerateRoadmap(ctx, ai.Profile{
		PsychometricAnswers: session.PsychometricAnswers,
		Skills:              session.Skills,
	})
}

func newGenerator(ctx context.Context, cfg *GeminiConfig, logger *zap.Logger) (*gemini.Generator, error) {
	apiKeyFile := strings.TrimSpace(cfg.APIKeyFile)
	if apiKeyFile == "" {
		apiKeyFile = strings.TrimSpace(viper.GetString("ai.gemini.api-key-file"))
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.APIKey,
		Env:   geminiAPIKeyEnv,
		File:  apiKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file, GEMINI_API_KEY_FILE or GEMINI_API_KEY)", err)
	}

	genLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", cfg.Model),
	)

	return gemini.NewGenerator(ctx, apiKey, cfg.Model, cfg.MaxLogLength, genLogger)
}

func writeGraphImage(ctx context.Context, graph *skillgraph.Graph, layout skillgraph.Layout, output, format string) error {
	dot := skillgraph.ToDOT(graph, layout)

	var data []byte
	var err error
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "dot":
		data = []byte(dot)
	case "png":
		data, err = skillgraph.RenderPNG(ctx, dot)
	case "svg", "":
		data, err = skillgraph.RenderSVG(ctx, dot)
	default:
		return fmt.Errorf("unsupported graph format: %s", format)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(output, data, 0o644)
}
