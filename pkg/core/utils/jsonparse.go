package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// RepairJSON fixes the JSON mistakes language models make most often:
// single quotes, unquoted keys, trailing commas, unclosed brackets,
// TRUE/False casing, stray comments.
func RepairJSON(malformed string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "", fmt.Errorf("json repair failed: %w", err)
	}
	return repaired, nil
}

// SmartParse tries progressively more lenient strategies to unmarshal
// model output into schema:
//
//  1. standard encoding/json
//  2. json-repair, then standard parse
//  3. Hjson (unquoted keys/strings, optional commas)
//
// Returns the form of the input that finally parsed, or an error when
// every strategy failed. Callers decide whether that error is fatal;
// the investment extractor treats it as a hard format failure.
func SmartParse(input string, schema interface{}) (string, error) {
	if err := json.Unmarshal([]byte(input), schema); err == nil {
		return input, nil
	}

	if repaired, err := RepairJSON(input); err == nil {
		if err := json.Unmarshal([]byte(repaired), schema); err == nil {
			return repaired, nil
		}
	}

	var loose interface{}
	if err := hjson.Unmarshal([]byte(input), &loose); err == nil {
		if normalized, err := json.Marshal(loose); err == nil {
			if err := json.Unmarshal(normalized, schema); err == nil {
				return string(normalized), nil
			}
		}
	}

	return "", fmt.Errorf("all parsing strategies failed")
}
