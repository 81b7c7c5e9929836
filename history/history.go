/*
History Module - Calculation History Management
================================================

This module provides persistent storage and retrieval of calculation
history using JSON serialization. Every evaluated line is stored in a
local file and can be displayed back to the user for reference.

The history system:
- Automatically saves each successful calculation
- Persists data across program sessions
- Displays results in reverse chronological order (newest first)
- Handles file I/O errors gracefully
- Uses structured JSON format for data integrity

File format: Array of Entry objects in JSON format
Location: history.json under ~/.ucalc
*/

package history

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"ucalc/number"
)

// NumberJSON marshals a Number the way the REPL prints it: a plain
// float64 when purely real and finite, a "±∞"/"NaN" string when not,
// generalizing the teacher's own JsonFloat special-casing to a value
// that may also carry an imaginary part.
type NumberJSON number.Number

func (n NumberJSON) MarshalJSON() ([]byte, error) {
	v := number.Number(n)
	if v.IsNaN() {
		return json.Marshal("NaN")
	}
	if v.Imag == 0 {
		if math.IsInf(v.Real, 1) {
			return json.Marshal("+∞")
		}
		if math.IsInf(v.Real, -1) {
			return json.Marshal("-∞")
		}
		if math.IsNaN(v.Real) {
			return json.Marshal("NaN")
		}
		return json.Marshal(v.Real)
	}
	return json.Marshal(v.String())
}

func (n *NumberJSON) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = NumberJSON(number.FromReal(f))
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "+∞":
		*n = NumberJSON(number.Infinity)
	case "-∞":
		*n = NumberJSON(number.NegInf)
	case "NaN":
		*n = NumberJSON(number.NaN)
	default:
		*n = NumberJSON(number.Number{})
	}
	return nil
}

// Entry represents a single calculation record in the history.
type Entry struct {
	Expression string     `json:"expression"` // Original infix expression
	Postfix    string     `json:"postfix"`    // Its postfix (RPN) rendering
	Result     NumberJSON `json:"result"`     // Computed result
}

const fileName = "history.json"

// Path returns ~/.ucalc/history.json, creating ~/.ucalc if absent.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".ucalc")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create history directory: %w", err)
	}
	return filepath.Join(dir, fileName), nil
}

// AddHistory appends a new calculation to the persistent history file.
// Handles file creation and existing data preservation, rewriting the
// whole file in place with the new entry appended.
func AddHistory(expression, postfix string, result number.Number) error {
	historyFile, err := Path()
	if err != nil {
		return err
	}
	var history []Entry

	// Attempt to read existing history data
	data, err := os.ReadFile(historyFile)
	if err != nil {
		if os.IsNotExist(err) {
			data = []byte{} // no file yet; start from an empty history
		} else {
			return err
		}
	}
	// Parse existing history if file contains data
	if len(data) > 0 {
		if err := json.Unmarshal(data, &history); err != nil {
			return err
		}
	}

	// Append new entry to existing history
	history = append(history, Entry{
		Expression: expression,
		Postfix:    postfix,
		Result:     NumberJSON(result),
	})

	// Serialize updated history with readable formatting
	updatedContent, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(historyFile, updatedContent, 0644)
}

// ShowHistory displays the complete calculation history in reverse
// order. Most recent calculations are shown first.
func ShowHistory() error {
	historyFile, err := Path()
	if err != nil {
		return err
	}
	var history []Entry

	data, err := os.ReadFile(historyFile)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("no history data")
			return nil
		}
		return err
	}

	if len(data) == 0 {
		fmt.Println("no history data")
		return nil
	}
	if err := json.Unmarshal(data, &history); err != nil {
		return err
	}

	if len(history) == 0 {
		fmt.Println("no history data")
		return nil
	}

	// Display history in reverse chronological order (newest first)
	for i := len(history) - 1; i >= 0; i-- {
		entry := history[i]
		fmt.Printf("------------------------------------------------\n")
		fmt.Printf(" Expression : %s\n", entry.Expression)
		fmt.Printf(" Postfix    : %s\n", entry.Postfix)
		fmt.Printf(" Result     : %s\n", number.Number(entry.Result).String())
		fmt.Printf("------------------------------------------------\n\n")
	}

	return nil
}
