package filter

// Filter defines the basic interface for result filters
type Filter interface {
	// Evaluate checks if an item matches the filter criteria
	Evaluate(item Item) bool
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Match is Evaluate with the runtime error exposed
	Match(item Item) (bool, error)

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}
