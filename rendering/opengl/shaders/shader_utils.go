package shaders

import (
	"fmt"

	"github.com/go-gl/gl/v4.3-core/gl"
)

// compileShader compiles a single shader stage and returns its handle, or
// the driver's info log on failure.
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		return 0, fmt.Errorf("%s", log)
	}

	return shader, nil
}

// linkProgram links vertex and fragment shaders into a program.
func linkProgram(vertShader, fragShader uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return 0, fmt.Errorf("link failed: %s", log)
	}

	return program, nil
}

// buildProgram compiles both stages and links them, releasing the
// intermediate shader objects.
func buildProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader error: %v", err)
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader error: %v", err)
	}
	defer gl.DeleteShader(fragShader)

	return linkProgram(vertShader, fragShader)
}
