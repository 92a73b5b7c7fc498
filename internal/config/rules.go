// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DecisionRules is the YAML rules file of the cel strategy:
//
//	rules:
//	  nearby: device.range <= 50
type DecisionRules struct {
	Rules map[string]string `yaml:"rules"`
}

// LoadDecisionRules reads the named CEL rules at path. An empty path yields
// no rules.
func LoadDecisionRules(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading decision rules: %w", err)
	}

	var rules DecisionRules
	if err = yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("%w: decision rules: %w", ErrInvalidDecisionConfigs, err)
	}
	for name, expr := range rules.Rules {
		if name == "" || expr == "" {
			return nil, fmt.Errorf("%w: rule %q is empty", ErrInvalidDecisionConfigs, name)
		}
	}
	if rules.Rules == nil {
		rules.Rules = map[string]string{}
	}
	return rules.Rules, nil
}
