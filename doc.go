/*
Package slrkit is a toolbox for SLR(1) parsing.

Clients describe a context-free grammar, let slrkit compute FIRST and FOLLOW sets
and the canonical collection of LR(0) item sets, and derive a deterministic
SLR(1) parsing table from it. A table-driven stack machine then parses token
sequences and reports every step it takes. Package structure is as follows:

■ lr: Package lr implements grammars, grammar analysis (FIRST/FOLLOW), LR(0)
closures, the canonical collection and the SLR(1) parsing table.

■ lr/slr: Package slr implements the parser driver on top of the tables of package lr.

■ lr/scanner: Package scanner defines a tokenizer interface for feeding the parser
from text, together with adapters for text/scanner and lexmachine.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package slrkit
