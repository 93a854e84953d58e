package expression

import (
	"fmt"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/techfix-sqaud/valstinecrm-backend/pkg/utils"
)

// Engine evaluates view filter conditions. Compiled programs are cached per
// expression source.
type Engine struct {
	programCache map[string]*vm.Program
	mu           sync.RWMutex
}

// NewEngine creates a new expression engine
func NewEngine() *Engine {
	return &Engine{
		programCache: make(map[string]*vm.Program),
	}
}

// operatorSources maps a view filter operator to the expression evaluated
// against {field, value}. Comparisons are canonicalized through TEXT/NUMBER
// so that "5" and 5 compare equal and mismatched types do not error.
var operatorSources = map[string]string{
	"equals":       `TEXT(field) == TEXT(value)`,
	"not_equals":   `TEXT(field) != TEXT(value)`,
	"contains":     `CONTAINS(LOWER(TEXT(field)), LOWER(TEXT(value)))`,
	"greater_than": `NUMBER(field) > NUMBER(value)`,
	"less_than":    `NUMBER(field) < NUMBER(value)`,
}

// SupportedOperator reports whether op is a known filter operator.
func SupportedOperator(op string) bool {
	_, ok := operatorSources[op]
	return ok
}

// MatchFilter evaluates one filter condition against a record field value.
func (e *Engine) MatchFilter(fieldVal interface{}, operator string, target interface{}) (bool, error) {
	src, ok := operatorSources[operator]
	if !ok {
		return false, fmt.Errorf("unsupported filter operator: %s", operator)
	}

	out, err := e.Evaluate(src, map[string]interface{}{
		"field": fieldVal,
		"value": target,
	})
	if err != nil {
		return false, err
	}

	matched, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter expression did not evaluate to a boolean: %v", out)
	}
	return matched, nil
}

// Evaluate compiles (if needed) and runs an expression against the given environment
func (e *Engine) Evaluate(expression string, env map[string]interface{}) (interface{}, error) {
	program, err := e.getProgram(expression)
	if err != nil {
		return nil, err
	}

	output, err := expr.Run(program, env)
	if err != nil {
		return nil, err
	}
	return output, nil
}

func (e *Engine) getProgram(expression string) (*vm.Program, error) {
	e.mu.RLock()
	if prog, ok := e.programCache[expression]; ok {
		e.mu.RUnlock()
		return prog, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	// Double check
	if prog, ok := e.programCache[expression]; ok {
		return prog, nil
	}

	options := []expr.Option{
		expr.Env(map[string]interface{}{}),
		expr.Function("TEXT", func(params ...interface{}) (interface{}, error) {
			if len(params) != 1 {
				return nil, fmt.Errorf("TEXT requires 1 argument")
			}
			return utils.ToString(params[0]), nil
		}),
		expr.Function("NUMBER", func(params ...interface{}) (interface{}, error) {
			if len(params) != 1 {
				return nil, fmt.Errorf("NUMBER requires 1 argument")
			}
			if f, ok := utils.ToFloat(params[0]); ok {
				return f, nil
			}
			return 0.0, nil
		}),
		expr.Function("LOWER", func(params ...interface{}) (interface{}, error) {
			if len(params) != 1 {
				return nil, fmt.Errorf("LOWER requires 1 argument")
			}
			s, ok := params[0].(string)
			if !ok {
				return nil, fmt.Errorf("LOWER argument must be string")
			}
			return strings.ToLower(s), nil
		}),
		expr.Function("CONTAINS", func(params ...interface{}) (interface{}, error) {
			if len(params) != 2 {
				return nil, fmt.Errorf("CONTAINS requires 2 arguments")
			}
			s, ok1 := params[0].(string)
			sub, ok2 := params[1].(string)
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("CONTAINS arguments must be strings")
			}
			return strings.Contains(s, sub), nil
		}),
	}

	program, err := expr.Compile(expression, options...)
	if err != nil {
		return nil, err
	}

	e.programCache[expression] = program
	return program, nil
}
