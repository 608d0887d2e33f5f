package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/civiai/planning-analyzer/internal/core/catalog"
	"github.com/civiai/planning-analyzer/internal/core/domain"
	"github.com/civiai/planning-analyzer/internal/core/ports"
)

const previewRunes = 1000

// AnalyzeUseCase runs the full compliance pipeline: classify, extract,
// score, identify missing requirements, recommend. Each call is a pure
// computation over its inputs; the catalog and rule tables are immutable
// after construction, so one instance is safe for concurrent use.
type AnalyzeUseCase struct {
	catalog    *catalog.Catalog
	classifier *Classifier
	extractor  *FieldExtractor
	recognizer ports.EntityRecognizer
}

// NewAnalyzeUseCase wires the engine. recognizer may be nil; analysis then
// runs on pattern extraction alone.
func NewAnalyzeUseCase(cat *catalog.Catalog, rules Rules, recognizer ports.EntityRecognizer) *AnalyzeUseCase {
	return &AnalyzeUseCase{
		catalog:    cat,
		classifier: NewClassifier(rules.Triggers),
		extractor:  NewFieldExtractor(rules.Patterns),
		recognizer: recognizer,
	}
}

// Analyze reviews one document text. Supplied entities take precedence
// over the wired recognizer; a recognizer failure degrades to pattern-only
// extraction and never fails the analysis.
func (uc *AnalyzeUseCase) Analyze(ctx context.Context, text string, entities map[string][]string) (*domain.AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return emptyTextResult(), nil
	}

	docType := uc.classifier.Classify(text)
	found := uc.extractor.Extract(text)
	MergeEntities(found, uc.supplementaryEntities(ctx, text, entities))

	missing := MissingRequirements(uc.catalog, docType, found)
	result := &domain.AnalysisResult{
		DocumentType:         docType,
		ExtractedTextPreview: preview(text),
		FoundInformation:     found,
		MissingRequirements:  missing,
		ComplianceScore:      ComplianceScore(uc.catalog.Requirements(docType), found),
		ConfidenceScore:      ConfidenceScore(found),
		Recommendations:      Recommendations(missing),
		NextSteps:            NextSteps(docType, missing),
	}

	slog.Debug("document_analyzed",
		"document_type", result.DocumentType,
		"found_fields", len(result.FoundInformation),
		"missing_requirements", len(result.MissingRequirements),
		"compliance_score", result.ComplianceScore,
	)
	return result, nil
}

func (uc *AnalyzeUseCase) supplementaryEntities(ctx context.Context, text string, entities map[string][]string) map[string][]string {
	if entities != nil {
		return entities
	}
	if uc.recognizer == nil {
		return nil
	}
	recognized, err := uc.recognizer.Recognize(ctx, text)
	if err != nil {
		slog.Warn("entity_recognition_unavailable", "error", err)
		return nil
	}
	return recognized
}

// emptyTextResult is the terminal shape for empty or whitespace-only
// input: not an error, a reportable outcome instructing the caller to
// verify the source document.
func emptyTextResult() *domain.AnalysisResult {
	return &domain.AnalysisResult{
		DocumentType:         domain.TypeUnknown,
		ExtractedTextPreview: "",
		FoundInformation:     domain.ExtractedFields{},
		MissingRequirements:  nil,
		ComplianceScore:      0.0,
		ConfidenceScore:      0.0,
		Recommendations:      []string{"Unable to extract text from document"},
		NextSteps:            []string{"Verify document format and try again"},
	}
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewRunes {
		return text
	}
	return string(runes[:previewRunes]) + "..."
}
