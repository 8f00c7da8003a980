// Package display holds output helpers shared by the CLI commands.
package display

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON pretty-prints v for terminal consumption.
func MarshalJSON(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// OutputJSON marshals and prints JSON to stdout
func OutputJSON(v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
