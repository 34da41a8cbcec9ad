package main

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"

	"roadmap-engine/internal/engine"
	"roadmap-engine/internal/model"
)

// loadRequest reads a calculation request from a JSON file, or stdin when the
// path is "-".
func loadRequest(path string) (*model.CalculationRequest, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	var req model.CalculationRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("invalid request file %s: %w", path, err)
	}
	return &req, nil
}

// run computes the full result and prints any messages to stderr so the
// rendered report stays clean on stdout.
func run(path string) (*model.CalculationResponse, error) {
	req, err := loadRequest(path)
	if err != nil {
		return nil, err
	}
	resp := engine.Process(req)
	for _, m := range resp.CalculationResult.Messages {
		fmt.Fprintf(os.Stderr, "%s [%s] %s\n", m.Level, m.Code, m.Message)
	}
	if resp.CalculationMetadata.CalculationOutcome == model.OutcomeFailure {
		return resp, fmt.Errorf("calculation failed")
	}
	return resp, nil
}
