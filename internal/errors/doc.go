// Package errors provides structured, actionable errors for the jsxdom
// tooling: markup loading, configuration, publishing and the preview
// server. The construction engine in pkg/jsx never uses it; host errors
// pass through that package unmodified.
//
// Each error carries a code registered in this package:
//   - M0xx: markup documents (parse failures, unknown tags and handlers)
//   - C0xx: configuration
//   - P0xx: publishing
//   - S0xx: preview server
//
// # Usage
//
//	err := errors.New("M003").
//	    WithLocation("pages/index.yaml", 12, 9).
//	    WithSuggestion(`did you mean "logClick"?`)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR M003: Unknown event handler
//	//
//	//   pages/index.yaml:12:9
//	//
//	//     11 │   props:
//	//   → 12 │     onClick: {$handler: logClik}
//	//        │         ^
//	//     13 │   children:
//	//
//	//   Hint: did you mean "logClick"?
package errors
