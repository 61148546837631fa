// Package routegen writes a TypeScript manifest of the registered routes so
// a browser client can share the route table: per route its pattern, its
// parameter names, and the type of its input payload.
package routegen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/tkrajina/typescriptify-golang-structs/typescriptify"

	"github.com/wayfind-go/wayfind/pkg/matcher"
)

type Def struct {
	Name    string
	Pattern string
	// Input is an instance of the route's input struct, or nil.
	Input any
}

type Opts struct {
	OutDest string
	Routes  []Def
}

const outFileName = "routes.ts"

// Generate writes <OutDest>/routes.ts. Patterns are validated through the
// matcher's parser, so a misplaced splat fails here rather than in the
// client.
func Generate(opts Opts) error {
	if err := os.MkdirAll(opts.OutDest, 0o755); err != nil {
		return errors.New("routegen: failed to ensure out dest dir: " + err.Error())
	}

	ts := "/*\n * This file is auto-generated. Do not edit.\n */\n"
	routeNames := make([]string, 0, len(opts.Routes))

	for _, def := range opts.Routes {
		segments, err := matcher.ParsePattern(def.Pattern)
		if err != nil {
			return err
		}

		routeNames = append(routeNames, def.Name)

		if def.Input != nil {
			converter := typescriptify.New()
			converter.CreateInterface = true

			inputStr, err := converter.Add(def.Input).Convert(make(map[string]string))
			if err != nil {
				return errors.New("routegen: failed to convert input to ts: " + err.Error())
			}

			// Drop the generated banner and rename the interface after the
			// route so the Go struct name never leaks into the client
			if i := strings.Index(inputStr, "export interface "); i >= 0 {
				inputStr = inputStr[i:]
			}
			origName := reflect.Indirect(reflect.ValueOf(def.Input)).Type().Name()
			inputStr = strings.Replace(
				inputStr,
				"export interface "+origName,
				"export interface "+def.Name+"Input",
				1,
			)
			ts += strings.TrimRight(inputStr, "\n") + "\n"
		} else {
			ts += "export type " + def.Name + "Input = undefined;\n"
		}

		ts += "const " + def.Name + " = " + toTsRouteDef(def, segments) + "\n"
	}

	ts += "\nexport const ROUTE_DEFS = [" + strings.Join(routeNames, ",") + "] as const;"
	ts += "\n" + extraCode

	err := os.WriteFile(filepath.Join(opts.OutDest, outFileName), []byte(ts), os.ModePerm)
	if err != nil {
		return errors.New("routegen: failed to write ts file: " + err.Error())
	}

	return nil
}

func toTsRouteDef(def Def, segments []matcher.Segment) string {
	var paramNames []string
	hasSplat := false
	for _, seg := range segments {
		switch seg.Type {
		case matcher.SegmentParam:
			paramNames = append(paramNames, `"`+seg.Value+`"`)
		case matcher.SegmentSplat:
			hasSplat = true
		}
	}

	return fmt.Sprintf(
		`{
  name: "%s",
  pattern: "%s",
  params: [%s] as const,
  hasSplat: %t,
  input: "" as unknown as %s,
} as const;`,
		def.Name,
		def.Pattern,
		strings.Join(paramNames, ", "),
		hasSplat,
		def.Name+"Input",
	)
}

var extraCode = `
export type RouteDef = (typeof ROUTE_DEFS)[number];
export type RouteName = RouteDef["name"];

export type Routes = {
	[K in RouteName]: Extract<RouteDef, { name: K }>;
};

export const ROUTES = Object.fromEntries(
	ROUTE_DEFS.map((r) => [r.name, r]),
) as Routes;

export type RouteInput<T extends RouteName> = Extract<
	RouteDef,
	{ name: T }
>["input"];
`
