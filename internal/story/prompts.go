package story

import (
	"fmt"
	"strings"

	"storyforge/internal/model"
)

// 各阶段的 token 上限
const (
	GenreMaxTokens    = 200
	OutlineMaxTokens  = 250
	SceneMaxTokens    = 300
	DialogueMaxTokens = 200
)

func genrePrompt(s model.StoryState) string {
	return strings.TrimSpace(fmt.Sprintf(`
You are a creative assistant. The user wants to write a short animated story.
Based on the following input, suggest a suitable genre and tone for the story.
User Input: %s
Respond in this format:
Genre: <genre>
Tone: <tone>
`, s.UserInput))
}

func outlinePrompt(s model.StoryState) string {
	return strings.TrimSpace(fmt.Sprintf(`
You are a creative writing assistant helping to write a short animated screenplay.
The user wants to write a story with the following details:
Genre: %s
Tone: %s
Idea: %s
Write a brief plot outline (3–5 sentences) for the story.
`, model.Value(s.Genre), model.Value(s.Tone), s.UserInput))
}

func scenePrompt(s model.StoryState) string {
	return strings.TrimSpace(fmt.Sprintf(`
You are a screenwriter.
Based on the following plot outline, write a key scene from the story.
Focus on a turning point or climax moment. Make the scene vivid, descriptive, and suitable for an animated short film.
Genre: %s
Tone: %s
Outline: %s
Write the scene in prose format (not screenplay format).
`, model.Value(s.Genre), model.Value(s.Tone), model.Value(s.Outline)))
}

func dialoguePrompt(s model.StoryState) string {
	return strings.TrimSpace(fmt.Sprintf(`
You are a dialogue writer for an animated screenplay.
Below is a scene from the story:
%s
Write the dialogue between the characters in screenplay format.
Keep it short, expressive, and suitable for a short animated film.
Use character names (you may invent them if needed), and format as:
CHARACTER:
Dialogue line
CHARACTER:
Dialogue line
`, model.Value(s.Scene)))
}
