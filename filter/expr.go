package filter

import (
	"maps"
	"slices"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	funcs      map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache[string, CompiledFilter](size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		helperFuncs: createHelperFunctions(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache[string, CompiledFilter]
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(c.compileEnvironment()),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		funcs:      c.helperFuncs,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// compileEnvironment gives the type checker the item fields and helper
// signatures. Values are replaced per item at run time.
func (c *exprCompiler) compileEnvironment() map[string]any {
	env := createRuntimeEnvironment(Item{})
	maps.Copy(env, c.helperFuncs)
	return env
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate evaluates the filter against an item. Runtime errors count as
// no match.
func (f *exprFilter) Evaluate(item Item) bool {
	ok, err := f.Match(item)
	return err == nil && ok
}

// Match evaluates the filter against an item
func (f *exprFilter) Match(item Item) (bool, error) {
	env := createRuntimeEnvironment(item)
	for name, fn := range f.funcs {
		if _, exists := env[name]; !exists {
			env[name] = fn
		}
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			ItemName:   item.Name,
			Err:        err,
		}
	}

	// AsBool guarantees the type
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 16)
	addHelperFunctions(funcs)
	return funcs
}

func addHelperFunctions(env map[string]any) {
	// contains, startsWith and endsWith are expr operators, so the
	// case-insensitive helpers use other names.
	env["containsText"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["hasPrefix"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["hasSuffix"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
}

func createRuntimeEnvironment(item Item) map[string]any {
	env := make(map[string]any, 24)

	addHelperFunctions(env)

	env["Item"] = item
	env["Type"] = item.Type
	env["Name"] = item.Name
	env["Artist"] = item.Artist
	env["Album"] = item.Album
	env["Listeners"] = item.Listeners
	env["Playcount"] = item.Playcount
	env["Duration"] = item.Duration
	env["Images"] = item.Images
	env["Tags"] = item.Tags

	env["hasTag"] = createHasTagFunc(item.Tags)
	env["hasImage"] = createHasImageFunc(item.Images)
	env["isArtist"] = createIsTypeFunc(item.Type, "artist")
	env["isAlbum"] = createIsTypeFunc(item.Type, "album")
	env["isTrack"] = createIsTypeFunc(item.Type, "track")

	return env
}

func createHasTagFunc(tags []string) func(string) bool {
	lowerTags := make([]string, len(tags))
	for i, tag := range tags {
		lowerTags[i] = strings.ToLower(tag)
	}
	return func(tag string) bool {
		return slices.Contains(lowerTags, strings.ToLower(tag))
	}
}

func createHasImageFunc(images []string) func() bool {
	return func() bool {
		return len(images) > 0
	}
}

func createIsTypeFunc(itemType, want string) func() bool {
	return func() bool {
		return itemType == want
	}
}
