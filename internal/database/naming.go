package database

import (
	"fmt"

	"gorm.io/gorm/schema"
)

// namingConvention names foreign keys fk_<table>_<column>_<referred table>
type namingConvention struct {
	schema.NamingStrategy
}

func (n namingConvention) RelationshipFKName(rel schema.Relationship) string {
	if len(rel.References) == 0 {
		return n.NamingStrategy.RelationshipFKName(rel)
	}
	ref := rel.References[0]
	if ref.ForeignKey == nil || ref.PrimaryKey == nil || ref.ForeignKey.Schema == nil || ref.PrimaryKey.Schema == nil {
		return n.NamingStrategy.RelationshipFKName(rel)
	}
	return fmt.Sprintf("fk_%s_%s_%s", ref.ForeignKey.Schema.Table, ref.ForeignKey.DBName, ref.PrimaryKey.Schema.Table)
}
