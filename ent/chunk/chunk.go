// Code generated by ent, DO NOT EDIT.

package chunk

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the chunk type in the database.
	Label = "chunk"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldChunkIndex holds the string denoting the chunk_index field in the database.
	FieldChunkIndex = "chunk_index"
	// FieldStartOffset holds the string denoting the start_offset field in the database.
	FieldStartOffset = "start_offset"
	// FieldEndOffset holds the string denoting the end_offset field in the database.
	FieldEndOffset = "end_offset"
	// FieldLocator holds the string denoting the locator field in the database.
	FieldLocator = "locator"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// Table holds the table name of the chunk in the database.
	Table = "chunks"
)

// Columns holds all SQL columns for chunk fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldChunkIndex,
	FieldStartOffset,
	FieldEndOffset,
	FieldLocator,
	FieldText,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// OrderOption defines the ordering options for the Chunk queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByChunkIndex orders the results by the chunk_index field.
func ByChunkIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChunkIndex, opts...).ToFunc()
}

// ByStartOffset orders the results by the start_offset field.
func ByStartOffset(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartOffset, opts...).ToFunc()
}

// ByEndOffset orders the results by the end_offset field.
func ByEndOffset(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndOffset, opts...).ToFunc()
}

// ByLocator orders the results by the locator field.
func ByLocator(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocator, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}
