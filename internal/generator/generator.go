// Batch generation of resized, format-converted image variants for
// static-asset delivery.
package generator

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"imagegen/config"
	"imagegen/internal/database"
	"imagegen/internal/entity"
	"imagegen/internal/pkg/encoder"
	"imagegen/internal/pkg/kafka"
	"imagegen/internal/pkg/processor"
)

type Generator interface {
	Run() (*entity.RunSummary, error)
}

type imageGenerator struct {
	cfg       *config.Config
	repo      database.VariantRepository
	processor processor.ImageProcessor
	producer  kafka.Producer

	heroes  []entity.HeroImageSpec
	singles []entity.SingleImageSpec

	// hero variants get all three encodings; singles skip the JPEG
	// fallback and keep original resolution
	heroEncoders   []encoder.Encoder
	singleEncoders []encoder.Encoder

	runID string
}

func NewGenerator(
	cfg *config.Config,
	repo database.VariantRepository,
	proc processor.ImageProcessor,
	producer kafka.Producer,
	heroes []entity.HeroImageSpec,
	singles []entity.SingleImageSpec,
) Generator {
	webp := encoder.NewWebP(cfg.Assets.WebPQuality)
	avif := encoder.NewAVIF(cfg.Assets.AVIFQuality)
	jpg := encoder.NewJPEG(cfg.Assets.JPEGQuality)

	return &imageGenerator{
		cfg:            cfg,
		repo:           repo,
		processor:      proc,
		producer:       producer,
		heroes:         heroes,
		singles:        singles,
		heroEncoders:   []encoder.Encoder{webp, avif, jpg},
		singleEncoders: []encoder.Encoder{webp, avif},
		runID:          uuid.New().String(),
	}
}

// Run processes every hero spec, then every single spec, strictly in
// list order. A missing source is warned about and skipped; any other
// failure aborts the run immediately.
func (g *imageGenerator) Run() (*entity.RunSummary, error) {
	if err := os.MkdirAll(g.repo.Root(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output root: %w", err)
	}

	summary := &entity.RunSummary{}

	for _, spec := range g.heroes {
		written, err := g.emitHeroVariants(spec)
		if err != nil {
			return nil, err
		}
		if written == 0 {
			summary.Skipped++
		}
		summary.Written += written
	}

	for _, spec := range g.singles {
		written, err := g.emitSingleVariants(spec)
		if err != nil {
			return nil, err
		}
		if written == 0 {
			summary.Skipped++
		}
		summary.Written += written
	}

	logrus.Infof("done: %d files written, %d sources skipped", summary.Written, summary.Skipped)
	g.printUsageExample()

	return summary, nil
}

// resolveHeroSource checks the hero subdirectory first, then the input
// root. Absence at both candidates is a skip, not an error.
func (g *imageGenerator) resolveHeroSource(spec entity.HeroImageSpec) (string, bool) {
	filename := spec.Name + spec.Ext
	candidates := []string{
		filepath.Join(g.cfg.Assets.InputRoot, g.cfg.Assets.HeroSubdir, filename),
		filepath.Join(g.cfg.Assets.InputRoot, filename),
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	logrus.Warnf("source %s not found (checked %s and %s), skipping; download it from %s",
		filename, candidates[0], candidates[1], g.downloadHint(g.cfg.Assets.HeroSubdir, filename))
	return "", false
}

func (g *imageGenerator) resolveSingleSource(spec entity.SingleImageSpec) (string, bool) {
	candidate := filepath.Join(g.cfg.Assets.InputRoot, spec.InputRelPath)

	if _, err := os.Stat(candidate); err == nil {
		return candidate, true
	}

	logrus.Warnf("source %s not found (checked %s), skipping; download it from %s",
		spec.InputRelPath, candidate, g.downloadHint(filepath.ToSlash(spec.InputRelPath)))
	return "", false
}

// emitHeroVariants writes one file per configured width per encoding.
func (g *imageGenerator) emitHeroVariants(spec entity.HeroImageSpec) (int, error) {
	sourcePath, ok := g.resolveHeroSource(spec)
	if !ok {
		return 0, nil
	}

	img, err := g.processor.Load(sourcePath)
	if err != nil {
		return 0, fmt.Errorf("failed to load %s: %w", sourcePath, err)
	}

	written := 0
	for _, width := range g.cfg.Assets.Widths {
		resized := g.processor.ResizeWidth(img, width)

		for _, enc := range g.heroEncoders {
			outPath := g.repo.HeroPath(spec, width, enc.Ext())
			if err := g.writeVariant(resized, enc, outPath); err != nil {
				return written, err
			}

			g.publishEvent(entity.Variant{
				Source: sourcePath,
				Width:  width,
				Format: enc.Format(),
				Path:   outPath,
			})
			written++
		}
	}

	return written, nil
}

// emitSingleVariants converts the source to WebP and AVIF at its
// original resolution.
func (g *imageGenerator) emitSingleVariants(spec entity.SingleImageSpec) (int, error) {
	sourcePath, ok := g.resolveSingleSource(spec)
	if !ok {
		return 0, nil
	}

	img, err := g.processor.Load(sourcePath)
	if err != nil {
		return 0, fmt.Errorf("failed to load %s: %w", sourcePath, err)
	}

	written := 0
	for _, enc := range g.singleEncoders {
		outPath := g.repo.SinglePath(spec, enc.Ext())
		if err := g.writeVariant(img, enc, outPath); err != nil {
			return written, err
		}

		g.publishEvent(entity.Variant{
			Source: sourcePath,
			Format: enc.Format(),
			Path:   outPath,
		})
		written++
	}

	return written, nil
}

func (g *imageGenerator) writeVariant(img image.Image, enc encoder.Encoder, outPath string) error {
	var buf bytes.Buffer
	if err := enc.Encode(&buf, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", outPath, err)
	}

	if err := g.repo.Save(outPath, &buf); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	logrus.Infof("created %s", filepath.Join(g.repo.Root(), outPath))
	return nil
}

// publishEvent is best effort: a broker hiccup must not abort the run.
func (g *imageGenerator) publishEvent(variant entity.Variant) {
	event := entity.VariantEvent{RunID: g.runID, Variant: variant}
	if err := g.producer.SendEvent(event); err != nil {
		logrus.Warnf("failed to publish variant event for %s: %v", variant.Path, err)
	}
}

func (g *imageGenerator) downloadHint(parts ...string) string {
	return strings.TrimSuffix(g.cfg.Assets.RemoteBaseURL, "/") + "/" + strings.Join(parts, "/")
}

// printUsageExample emits an advisory <picture> snippet for the first
// hero spec, referencing the remote asset host.
func (g *imageGenerator) printUsageExample() {
	if len(g.heroes) == 0 {
		return
	}

	spec := g.heroes[0]
	base := strings.TrimSuffix(g.cfg.Assets.RemoteBaseURL, "/")
	hero := g.cfg.Assets.HeroSubdir

	fmt.Println("\nUsage example:")
	fmt.Println("<picture>")
	for _, format := range []string{"avif", "webp"} {
		srcset := make([]string, 0, len(g.cfg.Assets.Widths))
		for _, w := range g.cfg.Assets.Widths {
			srcset = append(srcset, fmt.Sprintf("%s/%s/%s-%dw.%s %dw", base, hero, spec.Name, w, format, w))
		}
		fmt.Printf("  <source type=\"image/%s\" srcset=\"%s\">\n", format, strings.Join(srcset, ", "))
	}

	fallbackWidth := g.cfg.Assets.Widths[len(g.cfg.Assets.Widths)/2]
	fmt.Printf("  <img src=\"%s/%s/%s-%dw.jpg\" alt=\"\">\n", base, hero, spec.Name, fallbackWidth)
	fmt.Println("</picture>")
}
