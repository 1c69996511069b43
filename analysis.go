package main

import (
	"context"
	"sync"
)

// analysisKinds are the four independent looks at the repository whose
// results become the tutorial's sections.
var analysisKinds = []struct {
	name        string
	instruction string
}{
	{"purpose", promptPurpose},
	{"architecture", promptArchitecture},
	{"components", promptComponents},
	{"getting_started", promptGettingStarted},
}

// Analyzer issues the analysis calls against the model collaborator.
type Analyzer struct {
	model ModelClient
}

func NewAnalyzer(model ModelClient) *Analyzer {
	return &Analyzer{model: model}
}

// Analyze runs the four analyses concurrently and awaits them jointly.
// There is no partial-failure tolerance: if any call fails, the whole
// operation fails. Unparseable model output is not a failure; it becomes an
// unparsed section.
func (a *Analyzer) Analyze(ctx context.Context, repo RepoRef, contextBlock string) ([]AnalysisSection, error) {
	sections := make([]AnalysisSection, len(analysisKinds))
	errs := make([]error, len(analysisKinds))

	var wg sync.WaitGroup
	for i, kind := range analysisKinds {
		wg.Add(1)
		go func(i int, name, instruction string) {
			defer wg.Done()
			prompt := buildAnalysisPrompt(repo, instruction, contextBlock)
			raw, err := a.model.Complete(ctx, prompt)
			if err != nil {
				errs[i] = err
				return
			}
			sections[i] = ParseAnalysis(name, raw)
		}(i, kind.name, kind.instruction)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, collaboratorError("model", err)
		}
	}
	return sections, nil
}
