package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/companieshouse/checkout.client.ch.gov.uk/codec"
	"gopkg.in/yaml.v3"
)

// loadRequest reads a JSON or YAML request file into v. YAML is converted to
// JSON first so that unions and enums decode exactly as they would from the
// wire. An empty merchantAccount is filled with defaultMerchant.
func loadRequest(path, defaultMerchant string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading request file: [%w]", err)
	}
	return decodeRequest(data, isYAML(path), defaultMerchant, v)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func decodeRequest(data []byte, fromYAML bool, defaultMerchant string, v interface{}) error {
	var fields map[string]interface{}
	if fromYAML {
		if err := yaml.Unmarshal(data, &fields); err != nil {
			return fmt.Errorf("error parsing yaml request: [%w]", err)
		}
	} else if err := codec.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("error parsing json request: [%w]", err)
	}

	if fields == nil {
		fields = map[string]interface{}{}
	}
	if merchant, _ := fields["merchantAccount"].(string); merchant == "" && defaultMerchant != "" {
		fields["merchantAccount"] = defaultMerchant
	}

	normalised, err := codec.Marshal(fields)
	if err != nil {
		return fmt.Errorf("error converting request: [%w]", err)
	}
	return codec.Unmarshal(normalised, v)
}

// printResponse writes v as indented JSON.
func printResponse(w io.Writer, v interface{}) error {
	data, err := codec.MarshalIndent(v, "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
