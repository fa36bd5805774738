// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./repository.go -destination=../mocks/mock_transaction.go -package=mocks Transaction
//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./teamspace.go -destination=../mocks/mock_teamspace_repository.go -package=mocks TeamSpaceRepositoryIface
//go:generate mockgen -source=./teamspace_member.go -destination=../mocks/mock_teamspace_member_repository.go -package=mocks TeamSpaceMemberRepositoryIface
//go:generate mockgen -source=./folder.go -destination=../mocks/mock_folder_repository.go -package=mocks FolderRepositoryIface
//go:generate mockgen -source=./document.go -destination=../mocks/mock_document_repository.go -package=mocks DocumentRepositoryIface
