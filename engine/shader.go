package engine

// Compile compiles a single shader stage. On failure the stage is deleted
// and no handle is returned; the caller must not link.
func Compile(ctx Context, source string, kind StageKind) (Handle, error) {
	shader, ok, info := ctx.CompileShader(kind, source)
	if !ok {
		ctx.DeleteShader(shader)
		return 0, &CompileError{Stage: kind, Log: info}
	}

	return shader, nil
}

// Link links a vertex and a fragment stage into a program.
// The program handle is returned even when linking fails.
func Link(ctx Context, vertex, fragment Handle) (Handle, error) {
	program, ok, info := ctx.LinkProgram(vertex, fragment)
	if !ok {
		return program, &LinkError{Log: info}
	}

	return program, nil
}

// ResolveLocations queries the fixed set of attribute and uniform names.
// Names the program does not use resolve to Absent.
func ResolveLocations(ctx Context, program Handle) (map[AttributeName]Location, map[UniformName]Location) {
	attributes := make(map[AttributeName]Location, len(Attributes))
	for _, a := range Attributes {
		attributes[a] = locationOf(ctx.AttribLocation(program, a.Variable()))
		logger.Debugf("program %v: attribute %v at %v", program, a, attributes[a])
	}

	uniforms := make(map[UniformName]Location, len(Uniforms))
	for _, u := range Uniforms {
		uniforms[u] = locationOf(ctx.UniformLocation(program, u.Variable()))
		logger.Debugf("program %v: uniform %v at %v", program, u, uniforms[u])
	}

	return attributes, uniforms
}
