package shaders

// sphereVertexShader transforms sphere vertices to clip space and hands
// the fragment stage everything lighting needs: the transformed normal,
// the direction from the light (the star, at the world origin) to the
// vertex, and the view direction for the specular term.
const sphereVertexShader = `
#version 410 core

layout (location = 0) in vec3 position;
layout (location = 1) in vec3 normal;
layout (location = 2) in vec2 texCoord;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform mat3 normalMatrix;
uniform vec3 lightPos;
uniform vec3 cameraPos;

out vec3 fragNormal;
out vec2 fragUV;
out vec3 fragLightDir;
out vec3 fragViewDir;
out vec3 fragWorldPos;

void main() {
    vec4 worldPos = model * vec4(position, 1.0);
    fragWorldPos = worldPos.xyz;
    fragNormal = normalize(normalMatrix * normal);
    fragUV = texCoord;
    fragLightDir = normalize(lightPos - worldPos.xyz);
    fragViewDir = normalize(cameraPos - worldPos.xyz);
    gl_Position = projection * view * worldPos;
}
`

// sphereFragmentShader shades with a high ambient floor, Lambert diffuse
// and a specular highlight that vanishes on the night side, all modulated
// by a time- and position-driven twinkle factor.
const sphereFragmentShader = `
#version 410 core

in vec3 fragNormal;
in vec2 fragUV;
in vec3 fragLightDir;
in vec3 fragViewDir;
in vec3 fragWorldPos;

uniform vec3 baseColor;
uniform float time;

out vec4 outColor;

void main() {
    vec3 N = normalize(fragNormal);
    vec3 L = normalize(fragLightDir);
    vec3 V = normalize(fragViewDir);

    float ambient = 0.6;
    float diffuse = max(dot(N, L), 0.0);

    float specular = 0.0;
    if (diffuse > 0.0) {
        vec3 R = reflect(-L, N);
        specular = pow(max(dot(R, V), 0.0), 32.0);
    }

    float twinkle = sin(time * 2.0 + fragWorldPos.x * 10.0) * 0.1 + 0.9;

    vec3 color = baseColor * (ambient + diffuse * 0.6) + vec3(specular * 0.3);
    outColor = vec4(color * twinkle, 1.0);
}
`

// NewSphereProgram compiles and links the lit sphere program used for both
// the star and the planet.
func NewSphereProgram() (uint32, error) {
	return buildProgram(sphereVertexShader, sphereFragmentShader)
}
