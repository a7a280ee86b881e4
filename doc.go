// Package kor turns declarative extraction schemas into language-model
// prompts and parses the free-text responses back into structured values.
//
// It provides:
//
//   - An immutable schema node model (Text, Number, Selection/Option, Object)
//     with construction-time validation
//   - A generic Visitor protocol deriving textual projections from one tree
//   - Encoders/decoders for tagged text, JSON, CSV and XML that tolerate
//     partial or malformed model output (encoder/)
//   - Type descriptors and few-shot example generation feeding the prompt
//     assembler (typedesc/, examplegen/, prompt/)
//
// Design policy:
//   - Keep only public APIs in the root package; put detailed implementations under internal/.
//   - Place codecs under encoder/, prompt assembly under prompt/, and the CLI under cmd/kor.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	price := kor.NewText("price").Description("the price").
//		Example("It costs $10", "$10").MustBuild()
//	item := kor.NewObject("item").Attribute(price).MustBuild()
//
//	enc, _ := encoder.New("tagged", item)
//	tpl := prompt.Default(enc)
//	msgs, _ := tpl.Messages(item, userInput)
//	// ... hand msgs to a model, then:
//	values, err := enc.Decode(response)
//
// Calling the model, retrying and streaming are deliberately left to the
// surrounding application.
package kor
