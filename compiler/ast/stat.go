package ast

type ExpStat struct {
	Exp Exp
}

// let Name : Type = Exp ;
type LetStat struct {
	Line int
	Name string
	Type string
	Exp  Exp
}

// Name = Exp ;
type AssignStat struct {
	Line int
	Name string
	Exp  Exp
}

// return Exp ;
type RetStat struct {
	Line int
	Exp  Exp
}

type Block struct {
	Stats    []Stat
	LastLine int
}

// if ( Cond ) { Then } [ else { Else } ]
type IfStat struct {
	Line int
	Cond Exp
	Then *Block
	Else *Block // nil when there is no else branch
}

// fn Name ( Params ) -> RetType { Body }
type FuncStat struct {
	Line    int
	Name    string
	Params  []Param
	RetType string
	Body    *Block
}

type Param struct {
	Name string
	Type string
}

func (self *ExpStat) Kind() NodeKind    { return KindExpStat }
func (self *LetStat) Kind() NodeKind    { return KindLetStat }
func (self *AssignStat) Kind() NodeKind { return KindAssignStat }
func (self *RetStat) Kind() NodeKind    { return KindRetStat }
func (self *Block) Kind() NodeKind      { return KindBlockStat }
func (self *IfStat) Kind() NodeKind     { return KindIfStat }
func (self *FuncStat) Kind() NodeKind   { return KindFuncStat }

func (*ExpStat) statNode()    {}
func (*LetStat) statNode()    {}
func (*AssignStat) statNode() {}
func (*RetStat) statNode()    {}
func (*Block) statNode()      {}
func (*IfStat) statNode()     {}
func (*FuncStat) statNode()   {}

func (self *ExpStat) JSON() map[string]any {
	return map[string]any{
		"type": string(KindExpStat),
		"expr": self.Exp.JSON(),
	}
}

func (self *LetStat) JSON() map[string]any {
	return map[string]any{
		"type":       string(KindLetStat),
		"name":       self.Name,
		"value_type": self.Type,
		"value":      self.Exp.JSON(),
	}
}

func (self *AssignStat) JSON() map[string]any {
	return map[string]any{
		"type":  string(KindAssignStat),
		"name":  self.Name,
		"value": self.Exp.JSON(),
	}
}

func (self *RetStat) JSON() map[string]any {
	return map[string]any{
		"type":  string(KindRetStat),
		"value": self.Exp.JSON(),
	}
}

func (self *Block) JSON() map[string]any {
	stats := make([]any, 0, len(self.Stats))
	for _, stat := range self.Stats {
		stats = append(stats, stat.JSON())
	}
	return map[string]any{
		"type":       string(KindBlockStat),
		"statements": stats,
	}
}

func (self *IfStat) JSON() map[string]any {
	j := map[string]any{
		"type":        string(KindIfStat),
		"condition":   self.Cond.JSON(),
		"consequence": self.Then.JSON(),
	}
	if self.Else != nil {
		j["alternative"] = self.Else.JSON()
	}
	return j
}

func (self *FuncStat) JSON() map[string]any {
	params := make([]any, 0, len(self.Params))
	for _, p := range self.Params {
		params = append(params, map[string]any{"name": p.Name, "type": p.Type})
	}
	return map[string]any{
		"type":        string(KindFuncStat),
		"name":        self.Name,
		"parameters":  params,
		"return_type": self.RetType,
		"body":        self.Body.JSON(),
	}
}
