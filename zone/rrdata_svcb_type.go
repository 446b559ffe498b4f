package zone

import "encoding/binary"

func init() {
	registerRR("SVCB", parseSVCBLike)
	registerRR("HTTPS", parseSVCBLike)
}

// parseSVCBLike implements RFC 9460 §2.2, shared verbatim by SVCB and
// HTTPS: SvcPriority, TargetName, then a list of SvcParamKey=value pairs.
func parseSVCBLike(p *Parser, f *File) ([]byte, Result) {
	prio, res := p.readUint16Field(f, "SvcPriority")
	if res != Success {
		return nil, res
	}
	targetTok, res := p.nextFieldToken(f)
	if res != Success {
		return nil, res
	}
	target, ok := parseName(string(targetTok.Text), f.origin)
	if !ok {
		return nil, p.fail(SyntaxError, f, "invalid SVCB TargetName %q", targetTok.Text)
	}

	var params []svcParam
	for {
		tok, ok, res := p.readField(f)
		if res != Success {
			return nil, res
		}
		if !ok {
			break
		}
		param, ok := parseSvcParam(string(tok.Text))
		if !ok {
			return nil, p.fail(SyntaxError, f, "invalid SvcParam %q", tok.Text)
		}
		params = append(params, param)
	}

	if !validateMandatorySvcParams(params) {
		return nil, p.fail(SemanticError, f, "SvcParam mandatory key not present elsewhere in record")
	}

	encoded, ok := encodeSvcParams(params, p.opts.Secondary)
	if !ok {
		return nil, p.fail(SemanticError, f, "duplicate or unordered SvcParamKey")
	}

	out := binary.BigEndian.AppendUint16(nil, prio)
	out = append(out, target...)
	return append(out, encoded...), Success
}
