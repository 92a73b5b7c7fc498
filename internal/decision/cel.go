// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package decision

import (
	"fmt"
	"strings"

	"github.com/google/cel-go/cel"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/models"
)

const programCacheSize = 64

// CELFilter keeps devices for which a CEL expression evaluates to true.
//
// params is either an expression over the map variable "device" (keys
// deviceId, deviceName, deviceTypeId, networkId, range, authForm) or
// "@name" referring to a named rule. Compiled programs are cached.
type CELFilter struct {
	env   *cel.Env
	rules map[string]string
	cache *lru.Cache[string, cel.Program]
	log   *logger.Logger
}

// NewCELFilter compiles every rule up front so a broken rules file fails at
// startup.
func NewCELFilter(rules map[string]string, log *logger.Logger) (*CELFilter, error) {
	env, err := cel.NewEnv(cel.Variable("device", cel.MapType(cel.StringType, cel.DynType)))
	if err != nil {
		return nil, fmt.Errorf("create cel env: %w", err)
	}
	cache, err := lru.New[string, cel.Program](programCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create program cache: %w", err)
	}

	f := &CELFilter{env: env, rules: make(map[string]string, len(rules)), cache: cache, log: log}
	for name, expr := range rules {
		if _, err = f.program(expr); err != nil {
			return nil, fmt.Errorf("rule %q: %w", name, err)
		}
		f.rules[name] = expr
	}
	return f, nil
}

// Name implements Filter.
func (*CELFilter) Name() string {
	return StrategyCEL
}

// FilterDevices implements Filter.
func (f *CELFilter) FilterDevices(params string, devices []models.DeviceInfo) ([]models.DeviceInfo, error) {
	expr := strings.TrimSpace(params)
	if expr == "" {
		return devices, nil
	}
	if name, ok := strings.CutPrefix(expr, "@"); ok {
		rule, found := f.rules[name]
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRule, name)
		}
		expr = rule
	}

	prg, err := f.program(expr)
	if err != nil {
		return nil, err
	}

	out := make([]models.DeviceInfo, 0, len(devices))
	for _, d := range devices {
		val, _, evalErr := prg.Eval(map[string]any{"device": deviceVars(d)})
		if evalErr != nil {
			f.log.Err(evalErr).
				Str("func", "CELFilter.FilterDevices").
				Str("device_id", d.DeviceID).
				Msg("filter evaluation failed, device dropped")
			continue
		}
		if keep, ok := val.Value().(bool); ok && keep {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *CELFilter) program(expr string) (cel.Program, error) {
	if prg, ok := f.cache.Get(expr); ok {
		return prg, nil
	}

	ast, iss := f.env.Compile(expr)
	if iss.Err() != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadExpression, iss.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("%w: %q does not evaluate to bool", ErrBadExpression, expr)
	}

	prg, err := f.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadExpression, err)
	}
	f.cache.Add(expr, prg)
	return prg, nil
}

func deviceVars(d models.DeviceInfo) map[string]any {
	return map[string]any{
		"deviceId":     d.DeviceID,
		"deviceName":   d.DeviceName,
		"deviceTypeId": int64(d.DeviceTypeID),
		"networkId":    d.NetworkID,
		"range":        int64(d.Range),
		"authForm":     int64(d.AuthForm),
	}
}
