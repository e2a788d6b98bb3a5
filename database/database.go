package database

import (
	"gorm.io/gorm"
)

type Database struct {
	projectRepo    *ProjectRepo
	taskRepo       *TaskRepo
	socialLinkRepo *SocialLinkRepo
	commentRepo    *ProjectCommentRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:    NewProjectRepo(db),
		taskRepo:       NewTaskRepo(db),
		socialLinkRepo: NewSocialLinkRepo(db),
		commentRepo:    NewProjectCommentRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) TaskRepo() *TaskRepo {
	return d.taskRepo
}

func (d Database) SocialLinkRepo() *SocialLinkRepo {
	return d.socialLinkRepo
}

func (d Database) CommentRepo() *ProjectCommentRepo {
	return d.commentRepo
}
