// Package shaders holds the GLSL sources the demo programs are built from.
package shaders

import (
	"errors"
	"fmt"
	"sort"

	"github.com/der-antikeks/flatscene/engine"
)

var ErrUnknownShader = errors.New("shaders: unknown shader")

type Source struct {
	Vertex, Fragment string
}

var library = map[string]Source{
	// vertex colour times the object colour, no lighting
	"passthrough": {
		Vertex: `
			#version 330 core

			uniform mat4 projection;
			uniform mat4 modelView;

			layout(location = 0) in vec3 aPosition;
			layout(location = 1) in vec3 aNormal;
			layout(location = 2) in vec4 aTangent;
			layout(location = 3) in vec4 aUV;
			layout(location = 4) in vec4 aColour;

			out vec4 vColour;

			void main() {
				vColour = aColour;
				gl_Position = projection * modelView * vec4(aPosition, 1.0);
			}`,
		Fragment: `
			#version 330 core

			uniform vec4 colour;

			in vec4 vColour;

			layout(location = 0) out vec4 fragmentColour;

			void main() {
				fragmentColour = vColour * colour;
			}`,
	},
	// object colour only
	"flat": {
		Vertex: `
			#version 330 core

			uniform mat4 projection;
			uniform mat4 modelView;

			layout(location = 0) in vec3 aPosition;

			void main() {
				gl_Position = projection * modelView * vec4(aPosition, 1.0);
			}`,
		Fragment: `
			#version 330 core

			uniform vec4 colour;

			out vec4 fragmentColour;

			void main() {
				fragmentColour = colour;
			}`,
	},
}

// Default is the shader the demo scene is drawn with.
const Default = "passthrough"

func Get(name string) (Source, error) {
	s, ok := library[name]
	if !ok {
		return Source{}, fmt.Errorf("%w: %q", ErrUnknownShader, name)
	}
	return s, nil
}

// Names lists the library in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(library))
	for n := range library {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Build compiles and links a library shader. Like engine.NewProgram the
// program is returned even with a shader error.
func Build(ctx engine.Context, name string) (*engine.Program, error) {
	s, err := Get(name)
	if err != nil {
		return nil, err
	}
	return engine.NewProgram(ctx, s.Vertex, s.Fragment)
}
