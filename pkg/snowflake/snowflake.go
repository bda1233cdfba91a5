package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

func GenID() int64 {
	return node.Generate().Int64()
}

// GenStringID 业务主键统一用字符串形式
func GenStringID() string {
	return node.Generate().String()
}
