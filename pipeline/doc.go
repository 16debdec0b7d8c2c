// Package pipeline chains machines into a series, moving each output
// of one stage to the input of the next. The final stage's outputs can
// be handed to the caller one at a time or fed back to the first stage
// until every machine halts.
package pipeline
