package story

import "storyforge/internal/llm"

// MockRules mock 后端使用的预设回复，每个阶段一条
func MockRules() []llm.MockRule {
	return []llm.MockRule{
		{
			Contains: "suggest a suitable genre and tone",
			Reply:    "Genre: Science Fiction\nTone: Heartwarming",
		},
		{
			Contains: "Write a brief plot outline",
			Reply: "A maintenance robot in a quiet city museum starts copying the paintings it cleans. " +
				"Its clumsy canvases are mocked by visitors until a retired painter takes it under her wing. " +
				"When the museum plans to replace it with a newer model, the robot paints one last piece that moves the whole town.",
		},
		{
			Contains: "Write the scene in prose format",
			Reply: "Rain streaks the skylight as the robot lifts its brush. The gallery is empty except for the old painter, " +
				"who watches in silence while blue and gold bloom across the canvas. When the last stroke lands, the lights flicker " +
				"back on and the crowd gathered at the door falls quiet.",
		},
		{
			Contains: "Write the dialogue between the characters",
			Reply:    "MARA:\nYou painted the rain.\nPIXEL:\nI painted what it sounded like.\nMARA:\nThen they will have to listen.",
		},
	}
}
