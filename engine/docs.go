/*
	flat colour scene renderer

	the engine never talks to opengl directly, every call goes through the
	Context passed in at construction. glcontext implements it with go-gl,
	enginetest records it for tests.

	Renderer (one frame)
		pending resize
		controls (animation gate, speed, camera offset, zoom)
		clear, blend
		camera
			projection, view
			FrameAttributes
		meshes (list order, painter's algorithm)
			update (Animatable)
			bind
				program (attributes, uniforms)
				geometry (buffers)
			draw

	Animator turns scheduler timestamps into frame deltas.
*/

package engine
