// Package regression implements the ordinary-least-squares line fit
// cps uses for a compressed block's optional intercept/gradient
// parameters (spec.md §4.4: "unscale amplitude/frequency, retrend" on
// decode implies a linear trend was removed on encode).
//
// Grounded on the teacher's regression package (analyzer.go's
// fitHyperbolic/fitLogarithmic/etc., which each derive a line fit over
// a linearized x/y before transforming back): every one of those
// model fits shares the same sum-of-x/sum-of-y/sum-of-xy/sum-of-x²
// closed-form OLS core, which is all a linear a+b*x trend needs
// directly with no linearizing transform. The other five model types
// (hyperbolic/logarithmic/power/exponential/polynomial) and the
// blob-size Analyze/AnalyzeEach API built around them estimated
// mebo blob byte sizes from points-per-metric counts — a concern this
// format has no equivalent of, so they were not ported; see DESIGN.md.
package regression
