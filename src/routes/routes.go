package routes

import (
	"keep-app/src/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all API routes
func SetupRoutes(r *gin.Engine, noteHandler *handlers.NoteHandler, labelHandler *handlers.LabelHandler, authHandler *handlers.AuthHandler, authMW gin.HandlerFunc) {
	api := r.Group("/api")

	// ボード解除（ロック無効時は案内のみ返す）
	api.POST("/auth/unlock", authHandler.Unlock)

	// ノートAPI
	notes := api.Group("/notes")
	notes.Use(authMW)
	{
		// 基本CRUD操作
		notes.POST("", noteHandler.CreateNote)       // POST /api/notes
		notes.GET("", noteHandler.ListNotes)         // GET /api/notes?view=&q=&label=
		notes.GET("/:id", noteHandler.GetNote)       // GET /api/notes/:id
		notes.PUT("/:id", noteHandler.UpdateNote)    // PUT /api/notes/:id
		notes.DELETE("/:id", noteHandler.DeleteNote) // DELETE /api/notes/:id
		notes.DELETE("/trash", noteHandler.EmptyTrash)

		// ライフサイクル操作
		notes.PATCH("/:id/pin", noteHandler.TogglePin)
		notes.PATCH("/:id/archive", noteHandler.ArchiveNote)
		notes.PATCH("/:id/unarchive", noteHandler.UnarchiveNote)
		notes.PATCH("/:id/trash", noteHandler.TrashNote)
		notes.PATCH("/:id/restore", noteHandler.RestoreNote)
		notes.POST("/:id/duplicate", noteHandler.DuplicateNote)

		// 色・リマインダー・モード変換
		notes.PATCH("/:id/color", noteHandler.SetColor)
		notes.PATCH("/:id/reminder", noteHandler.SetReminder)
		notes.DELETE("/:id/reminder", noteHandler.ClearReminder)
		notes.PATCH("/:id/convert", noteHandler.ConvertNote)

		// チェックリスト操作
		notes.POST("/:id/checklist", noteHandler.AddChecklistItem)
		notes.PATCH("/:id/checklist/:itemId", noteHandler.UpdateChecklistItem)
		notes.DELETE("/:id/checklist/:itemId", noteHandler.DeleteChecklistItem)

		// ラベル付け外し
		notes.PUT("/:id/labels/:labelId", noteHandler.AddLabelToNote)
		notes.DELETE("/:id/labels/:labelId", noteHandler.RemoveLabelFromNote)
	}

	// ラベルAPI
	labels := api.Group("/labels")
	labels.Use(authMW)
	{
		labels.GET("", labelHandler.ListLabels)
		labels.POST("", labelHandler.CreateLabel)
		labels.PUT("/:id", labelHandler.RenameLabel)
		labels.DELETE("/:id", labelHandler.DeleteLabel)
	}
}
