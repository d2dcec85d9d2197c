// Package session is the public face of the simulator: one register of
// physical units bound to a code.Spec.
//
// A Session applies errors and corrections, measures syndromes through a
// syndrome.Engine and decodes them through a decoder.Decoder (decoder.For by
// default). Random error sampling, scoring and rendering live elsewhere; a
// Session only accepts explicit unit indices and symbols.
//
// Events (error applied, syndrome measured, decode outcome) are logged at
// debug level on the logger passed with WithLogger.
package session
