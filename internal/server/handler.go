package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"storyforge/internal/model"
	"storyforge/internal/story"
)

// MissingInputMessage 缺少 user_input 时返回的固定错误信息
const MissingInputMessage = "Missing 'user_input' in request."

const generationFailedMessage = "story generation failed"

// StoryRunner 执行故事流水线
type StoryRunner interface {
	Run(ctx context.Context, userInput string) (model.StoryState, error)
}

type generateStoryRequest struct {
	UserInput *string `json:"user_input"`
}

// handleGenerateStory 处理故事生成请求
func handleGenerateStory(runner StoryRunner) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req generateStoryRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.UserInput == nil || *req.UserInput == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": MissingInputMessage})
			return
		}

		ctx := c.Request.Context()
		state, err := runner.Run(ctx, *req.UserInput)
		if err != nil {
			story.Logger(ctx).WithError(err).Error("story generation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": generationFailedMessage})
			return
		}

		c.JSON(http.StatusOK, state.Response())
	}
}
