package shaders

// Unlit flat-color program for the orbit path line loop. Path vertices are
// generated in world space, so no model matrix is involved.
const lineVertexShader = `
#version 410 core

layout (location = 0) in vec3 position;

uniform mat4 view;
uniform mat4 projection;

void main() {
    gl_Position = projection * view * vec4(position, 1.0);
}
`

const lineFragmentShader = `
#version 410 core

uniform vec4 lineColor;

out vec4 outColor;

void main() {
    outColor = lineColor;
}
`

// NewLineProgram compiles and links the orbit path program.
func NewLineProgram() (uint32, error) {
	return buildProgram(lineVertexShader, lineFragmentShader)
}
