// Package telemetry wires construction metrics and render tracing.
//
// Metrics implements jsx.Observer and exports Prometheus counters:
//
//   - jsxdom_nodes_total{kind}: nodes created, by element, text and fragment
//   - jsxdom_bindings_total{kind}: props bound, by binding decision
//   - jsxdom_render_duration_seconds{page,status}: page render duration
//
// Tracer starts OpenTelemetry spans around page renders using the global
// tracer provider. Configure the provider in main before serving.
package telemetry
