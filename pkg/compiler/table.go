package compiler

// parseTable is the SLR(1) automaton for the productions in grammar.go, one
// row per state. The comment above each row lists the leading items of the
// state's item set. A (state, symbol) pair with no entry is a syntax error;
// table_test.go checks the rows against the grammar.
var parseTable = ParsingTable{
	// 0: Start -> . Program | Program -> . Decls Cmds | Decls -> . Decls Decl | ...
	{
		Actions: map[Symbol]Action{
			SymIdent: reduce(ProdDeclsEmpty),
			SymInt:   reduce(ProdDeclsEmpty),
			SymChar:  reduce(ProdDeclsEmpty),
			SymBool:  reduce(ProdDeclsEmpty),
			SymIf:    reduce(ProdDeclsEmpty),
			SymEOF:   reduce(ProdDeclsEmpty),
		},
		Gotos: map[Symbol]int{
			SymProgram: 1,
			SymDecls:   2,
		},
	},
	// 1: Start -> Program .
	{
		Actions: map[Symbol]Action{
			SymEOF: accept(),
		},
	},
	// 2: Program -> Decls . Cmds | Decls -> Decls . Decl | Decl -> . Type id ; | ...
	{
		Actions: map[Symbol]Action{
			SymIdent:  reduce(ProdCmdsEmpty),
			SymInt:    shift(6),
			SymChar:   shift(7),
			SymBool:   shift(8),
			SymIf:     reduce(ProdCmdsEmpty),
			SymRBrace: reduce(ProdCmdsEmpty),
			SymEOF:    reduce(ProdCmdsEmpty),
		},
		Gotos: map[Symbol]int{
			SymDecl: 4,
			SymType: 5,
			SymCmds: 3,
		},
	},
	// 3: Program -> Decls Cmds . | Cmds -> Cmds . Cmd | Cmd -> . Assign | ...
	{
		Actions: map[Symbol]Action{
			SymIdent: shift(12),
			SymIf:    shift(13),
			SymEOF:   reduce(ProdProgram),
		},
		Gotos: map[Symbol]int{
			SymCmd:        9,
			SymAssignStmt: 10,
			SymIfStmt:     11,
		},
	},
	// 4: Decls -> Decls Decl .
	{
		Actions: map[Symbol]Action{
			SymIdent: reduce(ProdDeclsMore),
			SymInt:   reduce(ProdDeclsMore),
			SymChar:  reduce(ProdDeclsMore),
			SymBool:  reduce(ProdDeclsMore),
			SymIf:    reduce(ProdDeclsMore),
			SymEOF:   reduce(ProdDeclsMore),
		},
	},
	// 5: Decl -> Type . id ;
	{
		Actions: map[Symbol]Action{
			SymIdent: shift(14),
		},
	},
	// 6: Type -> int .
	{
		Actions: map[Symbol]Action{
			SymIdent: reduce(ProdTypeInt),
		},
	},
	// 7: Type -> char .
	{
		Actions: map[Symbol]Action{
			SymIdent: reduce(ProdTypeChar),
		},
	},
	// 8: Type -> bool .
	{
		Actions: map[Symbol]Action{
			SymIdent: reduce(ProdTypeBool),
		},
	},
	// 9: Cmds -> Cmds Cmd .
	{
		Actions: map[Symbol]Action{
			SymIdent:  reduce(ProdCmdsMore),
			SymIf:     reduce(ProdCmdsMore),
			SymRBrace: reduce(ProdCmdsMore),
			SymEOF:    reduce(ProdCmdsMore),
		},
	},
	// 10: Cmd -> Assign .
	{
		Actions: map[Symbol]Action{
			SymIdent:  reduce(ProdCmdAssign),
			SymIf:     reduce(ProdCmdAssign),
			SymRBrace: reduce(ProdCmdAssign),
			SymEOF:    reduce(ProdCmdAssign),
		},
	},
	// 11: Cmd -> If .
	{
		Actions: map[Symbol]Action{
			SymIdent:  reduce(ProdCmdIf),
			SymIf:     reduce(ProdCmdIf),
			SymRBrace: reduce(ProdCmdIf),
			SymEOF:    reduce(ProdCmdIf),
		},
	},
	// 12: Assign -> id . = Expr ;
	{
		Actions: map[Symbol]Action{
			SymAssign: shift(15),
		},
	},
	// 13: If -> if . ( Cond ) { Cmds }
	{
		Actions: map[Symbol]Action{
			SymLParen: shift(16),
		},
	},
	// 14: Decl -> Type id . ;
	{
		Actions: map[Symbol]Action{
			SymSemicolon: shift(17),
		},
	},
	// 15: Assign -> id = . Expr ; | Expr -> . Expr + Term | Expr -> . Expr - Term | ...
	{
		Actions: map[Symbol]Action{
			SymIdent:  shift(21),
			SymLParen: shift(23),
			SymConst:  shift(22),
		},
		Gotos: map[Symbol]int{
			SymExpr:   18,
			SymTerm:   19,
			SymFactor: 20,
		},
	},
	// 16: If -> if ( . Cond ) { Cmds } | Cond -> . Expr > Expr | Cond -> . Expr < Expr | ...
	{
		Actions: map[Symbol]Action{
			SymIdent:  shift(21),
			SymLParen: shift(23),
			SymConst:  shift(22),
		},
		Gotos: map[Symbol]int{
			SymCond:   24,
			SymExpr:   25,
			SymTerm:   19,
			SymFactor: 20,
		},
	},
	// 17: Decl -> Type id ; .
	{
		Actions: map[Symbol]Action{
			SymIdent: reduce(ProdDecl),
			SymInt:   reduce(ProdDecl),
			SymChar:  reduce(ProdDecl),
			SymBool:  reduce(ProdDecl),
			SymIf:    reduce(ProdDecl),
			SymEOF:   reduce(ProdDecl),
		},
	},
	// 18: Assign -> id = Expr . ; | Expr -> Expr . + Term | Expr -> Expr . - Term
	{
		Actions: map[Symbol]Action{
			SymSemicolon: shift(26),
			SymPlus:      shift(27),
			SymMinus:     shift(28),
		},
	},
	// 19: Expr -> Term . | Term -> Term . * Factor | Term -> Term . / Factor
	{
		Actions: map[Symbol]Action{
			SymSemicolon: reduce(ProdExprTerm),
			SymRParen:    reduce(ProdExprTerm),
			SymGreater:   reduce(ProdExprTerm),
			SymLess:      reduce(ProdExprTerm),
			SymGreaterEq: reduce(ProdExprTerm),
			SymLessEq:    reduce(ProdExprTerm),
			SymEqual:     reduce(ProdExprTerm),
			SymNotEqual:  reduce(ProdExprTerm),
			SymPlus:      reduce(ProdExprTerm),
			SymMinus:     reduce(ProdExprTerm),
			SymStar:      shift(29),
			SymSlash:     shift(30),
		},
	},
	// 20: Term -> Factor .
	{
		Actions: map[Symbol]Action{
			SymSemicolon: reduce(ProdTermFactor),
			SymRParen:    reduce(ProdTermFactor),
			SymGreater:   reduce(ProdTermFactor),
			SymLess:      reduce(ProdTermFactor),
			SymGreaterEq: reduce(ProdTermFactor),
			SymLessEq:    reduce(ProdTermFactor),
			SymEqual:     reduce(ProdTermFactor),
			SymNotEqual:  reduce(ProdTermFactor),
			SymPlus:      reduce(ProdTermFactor),
			SymMinus:     reduce(ProdTermFactor),
			SymStar:      reduce(ProdTermFactor),
			SymSlash:     reduce(ProdTermFactor),
		},
	},
	// 21: Factor -> id .
	{
		Actions: map[Symbol]Action{
			SymSemicolon: reduce(ProdFactorIdent),
			SymRParen:    reduce(ProdFactorIdent),
			SymGreater:   reduce(ProdFactorIdent),
			SymLess:      reduce(ProdFactorIdent),
			SymGreaterEq: reduce(ProdFactorIdent),
			SymLessEq:    reduce(ProdFactorIdent),
			SymEqual:     reduce(ProdFactorIdent),
			SymNotEqual:  reduce(ProdFactorIdent),
			SymPlus:      reduce(ProdFactorIdent),
			SymMinus:     reduce(ProdFactorIdent),
			SymStar:      reduce(ProdFactorIdent),
			SymSlash:     reduce(ProdFactorIdent),
		},
	},
	// 22: Factor -> const .
	{
		Actions: map[Symbol]Action{
			SymSemicolon: reduce(ProdFactorConst),
			SymRParen:    reduce(ProdFactorConst),
			SymGreater:   reduce(ProdFactorConst),
			SymLess:      reduce(ProdFactorConst),
			SymGreaterEq: reduce(ProdFactorConst),
			SymLessEq:    reduce(ProdFactorConst),
			SymEqual:     reduce(ProdFactorConst),
			SymNotEqual:  reduce(ProdFactorConst),
			SymPlus:      reduce(ProdFactorConst),
			SymMinus:     reduce(ProdFactorConst),
			SymStar:      reduce(ProdFactorConst),
			SymSlash:     reduce(ProdFactorConst),
		},
	},
	// 23: Expr -> . Expr + Term | Expr -> . Expr - Term | Expr -> . Term | ...
	{
		Actions: map[Symbol]Action{
			SymIdent:  shift(21),
			SymLParen: shift(23),
			SymConst:  shift(22),
		},
		Gotos: map[Symbol]int{
			SymExpr:   31,
			SymTerm:   19,
			SymFactor: 20,
		},
	},
	// 24: If -> if ( Cond . ) { Cmds }
	{
		Actions: map[Symbol]Action{
			SymRParen: shift(32),
		},
	},
	// 25: Cond -> Expr . > Expr | Cond -> Expr . < Expr | Cond -> Expr . >= Expr | ...
	{
		Actions: map[Symbol]Action{
			SymGreater:   shift(33),
			SymLess:      shift(34),
			SymGreaterEq: shift(35),
			SymLessEq:    shift(36),
			SymEqual:     shift(37),
			SymNotEqual:  shift(38),
			SymPlus:      shift(27),
			SymMinus:     shift(28),
		},
	},
	// 26: Assign -> id = Expr ; .
	{
		Actions: map[Symbol]Action{
			SymIdent:  reduce(ProdAssign),
			SymIf:     reduce(ProdAssign),
			SymRBrace: reduce(ProdAssign),
			SymEOF:    reduce(ProdAssign),
		},
	},
	// 27: Expr -> Expr + . Term | Term -> . Term * Factor | Term -> . Term / Factor | ...
	{
		Actions: map[Symbol]Action{
			SymIdent:  shift(21),
			SymLParen: shift(23),
			SymConst:  shift(22),
		},
		Gotos: map[Symbol]int{
			SymTerm:   39,
			SymFactor: 20,
		},
	},
	// 28: Expr -> Expr - . Term | Term -> . Term * Factor | Term -> . Term / Factor | ...
	{
		Actions: map[Symbol]Action{
			SymIdent:  shift(21),
			SymLParen: shift(23),
			SymConst:  shift(22),
		},
		Gotos: map[Symbol]int{
			SymTerm:   40,
			SymFactor: 20,
		},
	},
	// 29: Term -> Term * . Factor | Factor -> . id | Factor -> . const | ...
	{
		Actions: map[Symbol]Action{
			SymIdent:  shift(21),
			SymLParen: shift(23),
			SymConst:  shift(22),
		},
		Gotos: map[Symbol]int{
			SymFactor: 41,
		},
	},
	// 30: Term -> Term / . Factor | Factor -> . id | Factor -> . const | ...
	{
		Actions: map[Symbol]Action{
			SymIdent:  shift(21),
			SymLParen: shift(23),
			SymConst:  shift(22),
		},
		Gotos: map[Symbol]int{
			SymFactor: 42,
		},
	},
	// 31: Expr -> Expr . + Term | Expr -> Expr . - Term | Factor -> ( Expr . )
	{
		Actions: map[Symbol]Action{
			SymRParen: shift(43),
			SymPlus:   shift(27),
			SymMinus:  shift(28),
		},
	},
	// 32: If -> if ( Cond ) . { Cmds }
	{
		Actions: map[Symbol]Action{
			SymLBrace: shift(44),
		},
	},
	// 33: Cond -> Expr > . Expr | Expr -> . Expr + Term | Expr -> . Expr - Term | ...
	{
		Actions: map[Symbol]Action{
			SymIdent:  shift(21),
			SymLParen: shift(23),
			SymConst:  shift(22),
		},
		Gotos: map[Symbol]int{
			SymExpr:   45,
			SymTerm:   19,
			SymFactor: 20,
		},
	},
	// 34: Cond -> Expr < . Expr | Expr -> . Expr + Term | Expr -> . Expr - Term | ...
	{
		Actions: map[Symbol]Action{
			SymIdent:  shift(21),
			SymLParen: shift(23),
			SymConst:  shift(22),
		},
		Gotos: map[Symbol]int{
			SymExpr:   46,
			SymTerm:   19,
			SymFactor: 20,
		},
	},
	// 35: Cond -> Expr >= . Expr | Expr -> . Expr + Term | Expr -> . Expr - Term | ...
	{
		Actions: map[Symbol]Action{
			SymIdent:  shift(21),
			SymLParen: shift(23),
			SymConst:  shift(22),
		},
		Gotos: map[Symbol]int{
			SymExpr:   47,
			SymTerm:   19,
			SymFactor: 20,
		},
	},
	// 36: Cond -> Expr <= . Expr | Expr -> . Expr + Term | Expr -> . Expr - Term | ...
	{
		Actions: map[Symbol]Action{
			SymIdent:  shift(21),
			SymLParen: shift(23),
			SymConst:  shift(22),
		},
		Gotos: map[Symbol]int{
			SymExpr:   48,
			SymTerm:   19,
			SymFactor: 20,
		},
	},
	// 37: Cond -> Expr == . Expr | Expr -> . Expr + Term | Expr -> . Expr - Term | ...
	{
		Actions: map[Symbol]Action{
			SymIdent:  shift(21),
			SymLParen: shift(23),
			SymConst:  shift(22),
		},
		Gotos: map[Symbol]int{
			SymExpr:   49,
			SymTerm:   19,
			SymFactor: 20,
		},
	},
	// 38: Cond -> Expr != . Expr | Expr -> . Expr + Term | Expr -> . Expr - Term | ...
	{
		Actions: map[Symbol]Action{
			SymIdent:  shift(21),
			SymLParen: shift(23),
			SymConst:  shift(22),
		},
		Gotos: map[Symbol]int{
			SymExpr:   50,
			SymTerm:   19,
			SymFactor: 20,
		},
	},
	// 39: Expr -> Expr + Term . | Term -> Term . * Factor | Term -> Term . / Factor
	{
		Actions: map[Symbol]Action{
			SymSemicolon: reduce(ProdExprAdd),
			SymRParen:    reduce(ProdExprAdd),
			SymGreater:   reduce(ProdExprAdd),
			SymLess:      reduce(ProdExprAdd),
			SymGreaterEq: reduce(ProdExprAdd),
			SymLessEq:    reduce(ProdExprAdd),
			SymEqual:     reduce(ProdExprAdd),
			SymNotEqual:  reduce(ProdExprAdd),
			SymPlus:      reduce(ProdExprAdd),
			SymMinus:     reduce(ProdExprAdd),
			SymStar:      shift(29),
			SymSlash:     shift(30),
		},
	},
	// 40: Expr -> Expr - Term . | Term -> Term . * Factor | Term -> Term . / Factor
	{
		Actions: map[Symbol]Action{
			SymSemicolon: reduce(ProdExprSub),
			SymRParen:    reduce(ProdExprSub),
			SymGreater:   reduce(ProdExprSub),
			SymLess:      reduce(ProdExprSub),
			SymGreaterEq: reduce(ProdExprSub),
			SymLessEq:    reduce(ProdExprSub),
			SymEqual:     reduce(ProdExprSub),
			SymNotEqual:  reduce(ProdExprSub),
			SymPlus:      reduce(ProdExprSub),
			SymMinus:     reduce(ProdExprSub),
			SymStar:      shift(29),
			SymSlash:     shift(30),
		},
	},
	// 41: Term -> Term * Factor .
	{
		Actions: map[Symbol]Action{
			SymSemicolon: reduce(ProdTermMul),
			SymRParen:    reduce(ProdTermMul),
			SymGreater:   reduce(ProdTermMul),
			SymLess:      reduce(ProdTermMul),
			SymGreaterEq: reduce(ProdTermMul),
			SymLessEq:    reduce(ProdTermMul),
			SymEqual:     reduce(ProdTermMul),
			SymNotEqual:  reduce(ProdTermMul),
			SymPlus:      reduce(ProdTermMul),
			SymMinus:     reduce(ProdTermMul),
			SymStar:      reduce(ProdTermMul),
			SymSlash:     reduce(ProdTermMul),
		},
	},
	// 42: Term -> Term / Factor .
	{
		Actions: map[Symbol]Action{
			SymSemicolon: reduce(ProdTermDiv),
			SymRParen:    reduce(ProdTermDiv),
			SymGreater:   reduce(ProdTermDiv),
			SymLess:      reduce(ProdTermDiv),
			SymGreaterEq: reduce(ProdTermDiv),
			SymLessEq:    reduce(ProdTermDiv),
			SymEqual:     reduce(ProdTermDiv),
			SymNotEqual:  reduce(ProdTermDiv),
			SymPlus:      reduce(ProdTermDiv),
			SymMinus:     reduce(ProdTermDiv),
			SymStar:      reduce(ProdTermDiv),
			SymSlash:     reduce(ProdTermDiv),
		},
	},
	// 43: Factor -> ( Expr ) .
	{
		Actions: map[Symbol]Action{
			SymSemicolon: reduce(ProdFactorParen),
			SymRParen:    reduce(ProdFactorParen),
			SymGreater:   reduce(ProdFactorParen),
			SymLess:      reduce(ProdFactorParen),
			SymGreaterEq: reduce(ProdFactorParen),
			SymLessEq:    reduce(ProdFactorParen),
			SymEqual:     reduce(ProdFactorParen),
			SymNotEqual:  reduce(ProdFactorParen),
			SymPlus:      reduce(ProdFactorParen),
			SymMinus:     reduce(ProdFactorParen),
			SymStar:      reduce(ProdFactorParen),
			SymSlash:     reduce(ProdFactorParen),
		},
	},
	// 44: Cmds -> . Cmds Cmd | Cmds -> . | If -> if ( Cond ) { . Cmds }
	{
		Actions: map[Symbol]Action{
			SymIdent:  reduce(ProdCmdsEmpty),
			SymIf:     reduce(ProdCmdsEmpty),
			SymRBrace: reduce(ProdCmdsEmpty),
			SymEOF:    reduce(ProdCmdsEmpty),
		},
		Gotos: map[Symbol]int{
			SymCmds: 51,
		},
	},
	// 45: Cond -> Expr > Expr . | Expr -> Expr . + Term | Expr -> Expr . - Term
	{
		Actions: map[Symbol]Action{
			SymRParen: reduce(ProdCondGreater),
			SymPlus:   shift(27),
			SymMinus:  shift(28),
		},
	},
	// 46: Cond -> Expr < Expr . | Expr -> Expr . + Term | Expr -> Expr . - Term
	{
		Actions: map[Symbol]Action{
			SymRParen: reduce(ProdCondLess),
			SymPlus:   shift(27),
			SymMinus:  shift(28),
		},
	},
	// 47: Cond -> Expr >= Expr . | Expr -> Expr . + Term | Expr -> Expr . - Term
	{
		Actions: map[Symbol]Action{
			SymRParen: reduce(ProdCondGreaterEq),
			SymPlus:   shift(27),
			SymMinus:  shift(28),
		},
	},
	// 48: Cond -> Expr <= Expr . | Expr -> Expr . + Term | Expr -> Expr . - Term
	{
		Actions: map[Symbol]Action{
			SymRParen: reduce(ProdCondLessEq),
			SymPlus:   shift(27),
			SymMinus:  shift(28),
		},
	},
	// 49: Cond -> Expr == Expr . | Expr -> Expr . + Term | Expr -> Expr . - Term
	{
		Actions: map[Symbol]Action{
			SymRParen: reduce(ProdCondEqual),
			SymPlus:   shift(27),
			SymMinus:  shift(28),
		},
	},
	// 50: Cond -> Expr != Expr . | Expr -> Expr . + Term | Expr -> Expr . - Term
	{
		Actions: map[Symbol]Action{
			SymRParen: reduce(ProdCondNotEqual),
			SymPlus:   shift(27),
			SymMinus:  shift(28),
		},
	},
	// 51: Cmds -> Cmds . Cmd | Cmd -> . Assign | Cmd -> . If | ...
	{
		Actions: map[Symbol]Action{
			SymIdent:  shift(12),
			SymIf:     shift(13),
			SymRBrace: shift(52),
		},
		Gotos: map[Symbol]int{
			SymCmd:        9,
			SymAssignStmt: 10,
			SymIfStmt:     11,
		},
	},
	// 52: If -> if ( Cond ) { Cmds } .
	{
		Actions: map[Symbol]Action{
			SymIdent:  reduce(ProdIf),
			SymIf:     reduce(ProdIf),
			SymRBrace: reduce(ProdIf),
			SymEOF:    reduce(ProdIf),
		},
	},
}
