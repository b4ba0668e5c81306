package model

// StoryState 一次流水线执行中逐步累积的故事状态
//
// 每个阶段返回一个新的 StoryState（复制之前的字段并追加新字段），
// 已设置的字段不会被后续阶段修改。nil 表示对应字段尚未设置。
type StoryState struct {
	UserInput string  `json:"user_input"`         // 用户输入的故事创意
	Genre     *string `json:"genre,omitempty"`    // 题材
	Tone      *string `json:"tone,omitempty"`     // 基调
	Outline   *string `json:"outline,omitempty"`  // 剧情大纲
	Scene     *string `json:"scene,omitempty"`    // 关键场景
	Dialogue  *string `json:"dialogue,omitempty"` // 剧本对白
}

// NewStoryState 创建只包含用户输入的初始状态
func NewStoryState(userInput string) StoryState {
	return StoryState{UserInput: userInput}
}

// WithGenreTone 返回设置了题材和基调的新状态
func (s StoryState) WithGenreTone(genre, tone *string) StoryState {
	s.Genre = genre
	s.Tone = tone
	return s
}

// WithOutline 返回设置了大纲的新状态
func (s StoryState) WithOutline(outline string) StoryState {
	s.Outline = &outline
	return s
}

// WithScene 返回设置了场景的新状态
func (s StoryState) WithScene(scene string) StoryState {
	s.Scene = &scene
	return s
}

// WithDialogue 返回设置了对白的新状态
func (s StoryState) WithDialogue(dialogue string) StoryState {
	s.Dialogue = &dialogue
	return s
}

// StoryResponse /generate-story 的成功响应，未设置的字段序列化为 null
type StoryResponse struct {
	Genre    *string `json:"genre"`
	Tone     *string `json:"tone"`
	Outline  *string `json:"outline"`
	Scene    *string `json:"scene"`
	Dialogue *string `json:"dialogue"`
}

// Response 将最终状态转换为响应结构
func (s StoryState) Response() StoryResponse {
	return StoryResponse{
		Genre:    s.Genre,
		Tone:     s.Tone,
		Outline:  s.Outline,
		Scene:    s.Scene,
		Dialogue: s.Dialogue,
	}
}

// Value 返回字符串指针的值，nil 时返回 "None"，用于拼接提示词
func Value(p *string) string {
	if p == nil {
		return "None"
	}
	return *p
}
