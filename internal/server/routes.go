package server

func (s *Server) registerRoutes() {
	e := s.echo

	e.GET("/", s.root)
	e.GET("/health", s.health)

	e.GET("/posters", s.getPosters)
	e.GET("/posters/latest", s.getLatestPoster)
	e.GET("/posters/:id", s.getPoster)

	e.GET("/stats", s.getStats)
	e.GET("/photo/:file_id", s.getPhoto)

	e.GET("/stories", s.getStories)
	e.POST("/stories", s.createStory, s.rateLimit)
	e.PUT("/stories/:id", s.updateStory, s.rateLimit)
	e.DELETE("/stories/:id", s.deleteStory, s.rateLimit)
	e.POST("/stories/create-in-slot", s.createStoryInSlot, s.rateLimit)

	e.GET("/check-admin/:user_id", s.checkAdmin)
	e.POST("/upload-story-photo", s.uploadStoryPhoto, s.rateLimit)
	e.GET("/uploads/stories/:filename", s.getStoryPhoto)
}
