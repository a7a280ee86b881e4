package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"

	kor "github.com/reoring/kor"
	"github.com/reoring/kor/encoder"
	"github.com/reoring/kor/prompt"
	"github.com/reoring/kor/schemafile"
	"github.com/reoring/kor/typedesc"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "describe":
		describeCmd(os.Args[2:])
	case "prompt":
		promptCmd(os.Args[2:])
	case "decode":
		decodeCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "kor CLI\n\nUsage:\n  kor describe -schema schema.yaml [-style typescript|bullets]\n  kor prompt -schema schema.yaml -input TEXT [-encoder tagged|json|csv|xml] [-chat]\n  kor decode -schema schema.yaml [-encoder tagged|json|csv|xml] [-in response.txt]\n\nNotes:\n  - decode reads the model response from stdin unless -in is given.")
}

func describeCmd(args []string) {
	fs := flag.NewFlagSet("describe", flag.ExitOnError)
	schemaPath := fs.String("schema", "", "schema YAML file")
	style := fs.String("style", "typescript", "description style")
	_ = fs.Parse(args)

	node := loadSchema(*schemaPath)
	d, err := typedesc.ByName(*style)
	if err != nil {
		fatalf("%v", err)
	}
	out, err := d.Describe(node)
	if err != nil {
		fatalf("describe: %v", err)
	}
	fmt.Println(out)
}

func promptCmd(args []string) {
	fs := flag.NewFlagSet("prompt", flag.ExitOnError)
	schemaPath := fs.String("schema", "", "schema YAML file")
	input := fs.String("input", "", "user input text")
	format := fs.String("encoder", "tagged", "wire format")
	chat := fs.Bool("chat", false, "render role-tagged chat messages as JSON")
	_ = fs.Parse(args)

	node := loadSchema(*schemaPath)
	enc, err := encoder.New(*format, node)
	if err != nil {
		fatalf("%v", err)
	}
	tpl := prompt.Default(enc)

	if *chat {
		msgs, err := tpl.Messages(node, *input)
		if err != nil {
			fatalf("render: %v", err)
		}
		printJSON(msgs)
		return
	}
	out, err := tpl.String(node, *input)
	if err != nil {
		fatalf("render: %v", err)
	}
	fmt.Println(out)
}

func decodeCmd(args []string) {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	schemaPath := fs.String("schema", "", "schema YAML file")
	format := fs.String("encoder", "tagged", "wire format")
	in := fs.String("in", "", "response file (defaults to stdin)")
	_ = fs.Parse(args)

	node := loadSchema(*schemaPath)
	enc, err := encoder.New(*format, node)
	if err != nil {
		fatalf("%v", err)
	}

	var text []byte
	if *in == "" {
		text, err = io.ReadAll(os.Stdin)
	} else {
		text, err = os.ReadFile(*in)
	}
	if err != nil {
		fatalf("reading response: %v", err)
	}

	values, err := enc.Decode(string(text))
	if err != nil {
		fatalf("decode: %v", err)
	}
	printJSON(values)
}

func loadSchema(path string) kor.Node {
	if path == "" {
		fatalf("-schema is required")
	}
	f, err := os.Open(path)
	if err != nil {
		fatalf("opening schema: %v", err)
	}
	defer f.Close()
	node, err := schemafile.Load(f)
	if err != nil {
		fatalf("%v", err)
	}
	return node
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatalf("marshal: %v", err)
	}
	fmt.Println(string(out))
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
